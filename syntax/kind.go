package syntax

// Kind is the closed classification tag attached to every token and node
// in a VB6 syntax tree. It is partitioned into three ranges: composite
// node kinds, trivia token kinds, and terminal token kinds. Terminals
// never have children; composites never carry source text of their own.
type Kind uint16

const (
	// Unknown marks unrecognized input: a byte run the lexer could not
	// classify, or a subtree the parser gave up on.
	Unknown Kind = iota
	// EOF marks the end of the token stream. It never enters the tree.
	EOF

	// --- Composite node kinds ---

	// Root is the top-level node of every tree.
	Root
	// StatementList is an ordered block of statements (file body,
	// procedure body, branch body).
	StatementList

	OptionStatement
	AttributeStatement
	DimStatement
	ConstStatement
	ReDimStatement
	EraseStatement
	// DefTypeStatement covers the DefInt A-Z family of default-type
	// declarations.
	DefTypeStatement
	TypeStatement
	EnumStatement
	DeclareStatement
	ImplementsStatement
	EventStatement

	SubStatement
	FunctionStatement
	PropertyStatement
	ParameterList
	Parameter

	IfStatement
	ElseIfClause
	ElseClause
	SelectCaseStatement
	CaseClause
	CaseElseClause
	ForStatement
	ForEachStatement
	DoStatement
	WhileStatement
	WithStatement

	OnErrorStatement
	OnGoToStatement
	ResumeStatement
	GotoStatement
	GoSubStatement
	ReturnStatement
	ExitStatement
	EndStatement
	StopStatement
	LabelStatement

	AssignmentStatement
	SetStatement
	LetStatement
	LSetStatement
	RSetStatement
	CallStatement
	ImplicitCallStatement

	// Declarator is one name[(bounds)] [As [New] type] unit inside a
	// Dim/Const/ReDim statement.
	Declarator
	ArrayBounds
	AsClause

	ArgumentList
	Argument

	BinaryExpression
	UnaryExpression
	ParenthesizedExpression
	CallExpression
	MemberAccessExpression
	IdentifierExpression
	LiteralExpression
	NewExpression
	TypeOfExpression
	AddressOfExpression

	// --- Trivia token kinds ---

	// Whitespace covers runs of blanks and tabs.
	Whitespace
	// Newline is a single line terminator: \r\n, \n, or \r.
	Newline
	// Comment is a ' or Rem comment, excluding the line terminator.
	Comment
	// LineContinuation is the _ marker plus following blanks and the
	// absorbed line terminator. The parser sees no Newline inside a
	// continued logical line.
	LineContinuation

	// --- Terminal token kinds ---

	Ident
	NumberLit
	StringLit
	DateLit

	KwAccess
	KwAddressOf
	KwAlias
	KwAnd
	KwAny
	KwAppActivate
	KwAppend
	KwAs
	KwAttribute
	KwBase
	KwBeep
	KwBegin
	KwBinary
	KwBoolean
	KwByRef
	KwByVal
	KwByte
	KwCall
	KwCase
	KwChDir
	KwChDrive
	KwClass
	KwClose
	KwCompare
	KwConst
	KwCurrency
	KwDatabase
	KwDate
	KwDecimal
	KwDeclare
	KwDefBool
	KwDefByte
	KwDefCur
	KwDefDate
	KwDefDbl
	KwDefDec
	KwDefInt
	KwDefLng
	KwDefObj
	KwDefSng
	KwDefStr
	KwDefVar
	KwDeleteSetting
	KwDim
	KwDo
	KwDouble
	KwEach
	KwElse
	KwElseIf
	KwEmpty
	KwEnd
	KwEnum
	KwEqv
	KwErase
	KwError
	KwEvent
	KwExit
	KwExplicit
	KwFalse
	KwFileCopy
	KwFor
	KwFriend
	KwFunction
	KwGet
	KwGlobal
	KwGoSub
	KwGoTo
	KwIf
	KwImp
	KwImplements
	KwIn
	KwInput
	KwInteger
	KwIs
	KwKill
	KwLSet
	KwLen
	KwLet
	KwLib
	KwLike
	KwLine
	KwLoad
	KwLock
	KwLong
	KwLoop
	KwMe
	KwMid
	KwMidB
	KwMkDir
	KwMod
	KwModule
	KwName
	KwNew
	KwNext
	KwNot
	KwNothing
	KwNull
	KwObject
	KwOn
	KwOpen
	KwOption
	KwOptional
	KwOr
	KwOutput
	KwParamArray
	KwPreserve
	KwPrint
	KwPrivate
	KwProperty
	KwPublic
	KwPut
	KwRSet
	KwRaiseEvent
	KwRandom
	KwRandomize
	KwRead
	KwReDim
	KwReset
	KwResume
	KwReturn
	KwRmDir
	KwSavePicture
	KwSaveSetting
	KwSeek
	KwSelect
	KwSendKeys
	KwSet
	KwSetAttr
	KwSingle
	KwStatic
	KwStep
	KwStop
	KwString
	KwSub
	KwText
	KwThen
	KwTime
	KwTo
	KwTrue
	KwType
	KwTypeOf
	KwUnload
	KwUnlock
	KwUntil
	KwVariant
	KwVersion
	KwWend
	KwWhile
	KwWidth
	KwWith
	KwWithEvents
	KwWrite
	KwXor

	Eq        // =
	Neq       // <>
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Backslash // \
	Caret     // ^
	Amp       // &
	Dot       // .
	Comma     // ,
	Colon     // :
	Semicolon // ;
	Hash      // #
	Bang      // !
	At        // @
	Dollar    // $
	Percent   // %
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }

	kindCount
)

const (
	firstNode    = Root
	lastNode     = AddressOfExpression
	firstTrivia  = Whitespace
	lastTrivia   = LineContinuation
	firstKeyword = KwAccess
	lastKeyword  = KwXor
	firstPunct   = Eq
	lastPunct    = RBrace
)

// IsNode reports whether k is a composite node kind.
func (k Kind) IsNode() bool {
	return (k >= firstNode && k <= lastNode) || k == Unknown
}

// IsTrivia reports whether k is a trivia token kind. Trivia tokens are
// retained in the stream and the tree but carry no grammatical meaning.
func (k Kind) IsTrivia() bool {
	return k >= firstTrivia && k <= lastTrivia
}

// IsKeyword reports whether k is a keyword token kind.
func (k Kind) IsKeyword() bool {
	return k >= firstKeyword && k <= lastKeyword
}

// IsLiteral reports whether k is a literal token kind.
func (k Kind) IsLiteral() bool {
	switch k {
	case NumberLit, StringLit, DateLit, KwTrue, KwFalse, KwNothing, KwNull, KwEmpty:
		return true
	default:
		return false
	}
}

// IsPunct reports whether k is an operator or punctuation token kind.
func (k Kind) IsPunct() bool {
	return k >= firstPunct && k <= lastPunct
}

// IsTerminal reports whether k is any token kind (trivia included).
func (k Kind) IsTerminal() bool {
	return k == Unknown || k == EOF || k == Ident ||
		k.IsTrivia() || k.IsKeyword() || k.IsPunct() ||
		k == NumberLit || k == StringLit || k == DateLit
}
