package syntax

import "fmt"

var kindNames = map[Kind]string{
	Unknown: "Unknown",
	EOF:     "EOF",

	Root:          "Root",
	StatementList: "StatementList",

	OptionStatement:     "OptionStatement",
	AttributeStatement:  "AttributeStatement",
	DimStatement:        "DimStatement",
	ConstStatement:      "ConstStatement",
	ReDimStatement:      "ReDimStatement",
	EraseStatement:      "EraseStatement",
	DefTypeStatement:    "DefTypeStatement",
	TypeStatement:       "TypeStatement",
	EnumStatement:       "EnumStatement",
	DeclareStatement:    "DeclareStatement",
	ImplementsStatement: "ImplementsStatement",
	EventStatement:      "EventStatement",

	SubStatement:      "SubStatement",
	FunctionStatement: "FunctionStatement",
	PropertyStatement: "PropertyStatement",
	ParameterList:     "ParameterList",
	Parameter:         "Parameter",

	IfStatement:         "IfStatement",
	ElseIfClause:        "ElseIfClause",
	ElseClause:          "ElseClause",
	SelectCaseStatement: "SelectCaseStatement",
	CaseClause:          "CaseClause",
	CaseElseClause:      "CaseElseClause",
	ForStatement:        "ForStatement",
	ForEachStatement:    "ForEachStatement",
	DoStatement:         "DoStatement",
	WhileStatement:      "WhileStatement",
	WithStatement:       "WithStatement",

	OnErrorStatement: "OnErrorStatement",
	OnGoToStatement:  "OnGoToStatement",
	ResumeStatement:  "ResumeStatement",
	GotoStatement:    "GotoStatement",
	GoSubStatement:   "GoSubStatement",
	ReturnStatement:  "ReturnStatement",
	ExitStatement:    "ExitStatement",
	EndStatement:     "EndStatement",
	StopStatement:    "StopStatement",
	LabelStatement:   "LabelStatement",

	AssignmentStatement:   "AssignmentStatement",
	SetStatement:          "SetStatement",
	LetStatement:          "LetStatement",
	LSetStatement:         "LSetStatement",
	RSetStatement:         "RSetStatement",
	CallStatement:         "CallStatement",
	ImplicitCallStatement: "ImplicitCallStatement",

	Declarator:  "Declarator",
	ArrayBounds: "ArrayBounds",
	AsClause:    "AsClause",

	ArgumentList: "ArgumentList",
	Argument:     "Argument",

	BinaryExpression:        "BinaryExpression",
	UnaryExpression:         "UnaryExpression",
	ParenthesizedExpression: "ParenthesizedExpression",
	CallExpression:          "CallExpression",
	MemberAccessExpression:  "MemberAccessExpression",
	IdentifierExpression:    "IdentifierExpression",
	LiteralExpression:       "LiteralExpression",
	NewExpression:           "NewExpression",
	TypeOfExpression:        "TypeOfExpression",
	AddressOfExpression:     "AddressOfExpression",

	Whitespace:       "Whitespace",
	Newline:          "Newline",
	Comment:          "Comment",
	LineContinuation: "LineContinuation",

	Ident:     "Ident",
	NumberLit: "NumberLit",
	StringLit: "StringLit",
	DateLit:   "DateLit",

	KwAccess:        "KwAccess",
	KwAddressOf:     "KwAddressOf",
	KwAlias:         "KwAlias",
	KwAnd:           "KwAnd",
	KwAny:           "KwAny",
	KwAppActivate:   "KwAppActivate",
	KwAppend:        "KwAppend",
	KwAs:            "KwAs",
	KwAttribute:     "KwAttribute",
	KwBase:          "KwBase",
	KwBeep:          "KwBeep",
	KwBegin:         "KwBegin",
	KwBinary:        "KwBinary",
	KwBoolean:       "KwBoolean",
	KwByRef:         "KwByRef",
	KwByVal:         "KwByVal",
	KwByte:          "KwByte",
	KwCall:          "KwCall",
	KwCase:          "KwCase",
	KwChDir:         "KwChDir",
	KwChDrive:       "KwChDrive",
	KwClass:         "KwClass",
	KwClose:         "KwClose",
	KwCompare:       "KwCompare",
	KwConst:         "KwConst",
	KwCurrency:      "KwCurrency",
	KwDatabase:      "KwDatabase",
	KwDate:          "KwDate",
	KwDecimal:       "KwDecimal",
	KwDeclare:       "KwDeclare",
	KwDefBool:       "KwDefBool",
	KwDefByte:       "KwDefByte",
	KwDefCur:        "KwDefCur",
	KwDefDate:       "KwDefDate",
	KwDefDbl:        "KwDefDbl",
	KwDefDec:        "KwDefDec",
	KwDefInt:        "KwDefInt",
	KwDefLng:        "KwDefLng",
	KwDefObj:        "KwDefObj",
	KwDefSng:        "KwDefSng",
	KwDefStr:        "KwDefStr",
	KwDefVar:        "KwDefVar",
	KwDeleteSetting: "KwDeleteSetting",
	KwDim:           "KwDim",
	KwDo:            "KwDo",
	KwDouble:        "KwDouble",
	KwEach:          "KwEach",
	KwElse:          "KwElse",
	KwElseIf:        "KwElseIf",
	KwEmpty:         "KwEmpty",
	KwEnd:           "KwEnd",
	KwEnum:          "KwEnum",
	KwEqv:           "KwEqv",
	KwErase:         "KwErase",
	KwError:         "KwError",
	KwEvent:         "KwEvent",
	KwExit:          "KwExit",
	KwExplicit:      "KwExplicit",
	KwFalse:         "KwFalse",
	KwFileCopy:      "KwFileCopy",
	KwFor:           "KwFor",
	KwFriend:        "KwFriend",
	KwFunction:      "KwFunction",
	KwGet:           "KwGet",
	KwGlobal:        "KwGlobal",
	KwGoSub:         "KwGoSub",
	KwGoTo:          "KwGoTo",
	KwIf:            "KwIf",
	KwImp:           "KwImp",
	KwImplements:    "KwImplements",
	KwIn:            "KwIn",
	KwInput:         "KwInput",
	KwInteger:       "KwInteger",
	KwIs:            "KwIs",
	KwKill:          "KwKill",
	KwLSet:          "KwLSet",
	KwLen:           "KwLen",
	KwLet:           "KwLet",
	KwLib:           "KwLib",
	KwLike:          "KwLike",
	KwLine:          "KwLine",
	KwLoad:          "KwLoad",
	KwLock:          "KwLock",
	KwLong:          "KwLong",
	KwLoop:          "KwLoop",
	KwMe:            "KwMe",
	KwMid:           "KwMid",
	KwMidB:          "KwMidB",
	KwMkDir:         "KwMkDir",
	KwMod:           "KwMod",
	KwModule:        "KwModule",
	KwName:          "KwName",
	KwNew:           "KwNew",
	KwNext:          "KwNext",
	KwNot:           "KwNot",
	KwNothing:       "KwNothing",
	KwNull:          "KwNull",
	KwObject:        "KwObject",
	KwOn:            "KwOn",
	KwOpen:          "KwOpen",
	KwOption:        "KwOption",
	KwOptional:      "KwOptional",
	KwOr:            "KwOr",
	KwOutput:        "KwOutput",
	KwParamArray:    "KwParamArray",
	KwPreserve:      "KwPreserve",
	KwPrint:         "KwPrint",
	KwPrivate:       "KwPrivate",
	KwProperty:      "KwProperty",
	KwPublic:        "KwPublic",
	KwPut:           "KwPut",
	KwRSet:          "KwRSet",
	KwRaiseEvent:    "KwRaiseEvent",
	KwRandom:        "KwRandom",
	KwRandomize:     "KwRandomize",
	KwRead:          "KwRead",
	KwReDim:         "KwReDim",
	KwReset:         "KwReset",
	KwResume:        "KwResume",
	KwReturn:        "KwReturn",
	KwRmDir:         "KwRmDir",
	KwSavePicture:   "KwSavePicture",
	KwSaveSetting:   "KwSaveSetting",
	KwSeek:          "KwSeek",
	KwSelect:        "KwSelect",
	KwSendKeys:      "KwSendKeys",
	KwSet:           "KwSet",
	KwSetAttr:       "KwSetAttr",
	KwSingle:        "KwSingle",
	KwStatic:        "KwStatic",
	KwStep:          "KwStep",
	KwStop:          "KwStop",
	KwString:        "KwString",
	KwSub:           "KwSub",
	KwText:          "KwText",
	KwThen:          "KwThen",
	KwTime:          "KwTime",
	KwTo:            "KwTo",
	KwTrue:          "KwTrue",
	KwType:          "KwType",
	KwTypeOf:        "KwTypeOf",
	KwUnload:        "KwUnload",
	KwUnlock:        "KwUnlock",
	KwUntil:         "KwUntil",
	KwVariant:       "KwVariant",
	KwVersion:       "KwVersion",
	KwWend:          "KwWend",
	KwWhile:         "KwWhile",
	KwWidth:         "KwWidth",
	KwWith:          "KwWith",
	KwWithEvents:    "KwWithEvents",
	KwWrite:         "KwWrite",
	KwXor:           "KwXor",

	Eq:        "Eq",
	Neq:       "Neq",
	Lt:        "Lt",
	LtEq:      "LtEq",
	Gt:        "Gt",
	GtEq:      "GtEq",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	Backslash: "Backslash",
	Caret:     "Caret",
	Amp:       "Amp",
	Dot:       "Dot",
	Comma:     "Comma",
	Colon:     "Colon",
	Semicolon: "Semicolon",
	Hash:      "Hash",
	Bang:      "Bang",
	At:        "At",
	Dollar:    "Dollar",
	Percent:   "Percent",
	LParen:    "LParen",
	RParen:    "RParen",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}
