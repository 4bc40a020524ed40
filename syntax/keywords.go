package syntax

import "golang.org/x/text/cases"

// keywords maps case-folded spellings to keyword kinds. VB6 is fully
// case-insensitive; the canonical key is the folded form and the token
// keeps whatever casing the source used.
var keywords = map[string]Kind{
	"access":        KwAccess,
	"addressof":     KwAddressOf,
	"alias":         KwAlias,
	"and":           KwAnd,
	"any":           KwAny,
	"appactivate":   KwAppActivate,
	"append":        KwAppend,
	"as":            KwAs,
	"attribute":     KwAttribute,
	"base":          KwBase,
	"beep":          KwBeep,
	"begin":         KwBegin,
	"binary":        KwBinary,
	"boolean":       KwBoolean,
	"byref":         KwByRef,
	"byval":         KwByVal,
	"byte":          KwByte,
	"call":          KwCall,
	"case":          KwCase,
	"chdir":         KwChDir,
	"chdrive":       KwChDrive,
	"class":         KwClass,
	"close":         KwClose,
	"compare":       KwCompare,
	"const":         KwConst,
	"currency":      KwCurrency,
	"database":      KwDatabase,
	"date":          KwDate,
	"decimal":       KwDecimal,
	"declare":       KwDeclare,
	"defbool":       KwDefBool,
	"defbyte":       KwDefByte,
	"defcur":        KwDefCur,
	"defdate":       KwDefDate,
	"defdbl":        KwDefDbl,
	"defdec":        KwDefDec,
	"defint":        KwDefInt,
	"deflng":        KwDefLng,
	"defobj":        KwDefObj,
	"defsng":        KwDefSng,
	"defstr":        KwDefStr,
	"defvar":        KwDefVar,
	"deletesetting": KwDeleteSetting,
	"dim":           KwDim,
	"do":            KwDo,
	"double":        KwDouble,
	"each":          KwEach,
	"else":          KwElse,
	"elseif":        KwElseIf,
	"empty":         KwEmpty,
	"end":           KwEnd,
	"enum":          KwEnum,
	"eqv":           KwEqv,
	"erase":         KwErase,
	"error":         KwError,
	"event":         KwEvent,
	"exit":          KwExit,
	"explicit":      KwExplicit,
	"false":         KwFalse,
	"filecopy":      KwFileCopy,
	"for":           KwFor,
	"friend":        KwFriend,
	"function":      KwFunction,
	"get":           KwGet,
	"global":        KwGlobal,
	"gosub":         KwGoSub,
	"goto":          KwGoTo,
	"if":            KwIf,
	"imp":           KwImp,
	"implements":    KwImplements,
	"in":            KwIn,
	"input":         KwInput,
	"integer":       KwInteger,
	"is":            KwIs,
	"kill":          KwKill,
	"len":           KwLen,
	"let":           KwLet,
	"lib":           KwLib,
	"like":          KwLike,
	"line":          KwLine,
	"load":          KwLoad,
	"lock":          KwLock,
	"long":          KwLong,
	"loop":          KwLoop,
	"lset":          KwLSet,
	"me":            KwMe,
	"mid":           KwMid,
	"midb":          KwMidB,
	"mkdir":         KwMkDir,
	"mod":           KwMod,
	"module":        KwModule,
	"name":          KwName,
	"new":           KwNew,
	"next":          KwNext,
	"not":           KwNot,
	"nothing":       KwNothing,
	"null":          KwNull,
	"object":        KwObject,
	"on":            KwOn,
	"open":          KwOpen,
	"option":        KwOption,
	"optional":      KwOptional,
	"or":            KwOr,
	"output":        KwOutput,
	"paramarray":    KwParamArray,
	"preserve":      KwPreserve,
	"print":         KwPrint,
	"private":       KwPrivate,
	"property":      KwProperty,
	"public":        KwPublic,
	"put":           KwPut,
	"raiseevent":    KwRaiseEvent,
	"random":        KwRandom,
	"randomize":     KwRandomize,
	"read":          KwRead,
	"redim":         KwReDim,
	"reset":         KwReset,
	"resume":        KwResume,
	"return":        KwReturn,
	"rmdir":         KwRmDir,
	"rset":          KwRSet,
	"savepicture":   KwSavePicture,
	"savesetting":   KwSaveSetting,
	"seek":          KwSeek,
	"select":        KwSelect,
	"sendkeys":      KwSendKeys,
	"set":           KwSet,
	"setattr":       KwSetAttr,
	"single":        KwSingle,
	"static":        KwStatic,
	"step":          KwStep,
	"stop":          KwStop,
	"string":        KwString,
	"sub":           KwSub,
	"text":          KwText,
	"then":          KwThen,
	"time":          KwTime,
	"to":            KwTo,
	"true":          KwTrue,
	"type":          KwType,
	"typeof":        KwTypeOf,
	"unload":        KwUnload,
	"unlock":        KwUnlock,
	"until":         KwUntil,
	"variant":       KwVariant,
	"version":       KwVersion,
	"wend":          KwWend,
	"while":         KwWhile,
	"width":         KwWidth,
	"with":          KwWith,
	"withevents":    KwWithEvents,
	"write":         KwWrite,
	"xor":           KwXor,
}

// foldSpelling case-folds one spelling. Casers are stateful, so each
// call gets its own; streams for different files fold concurrently.
func foldSpelling(spelling string) string {
	return cases.Fold().String(spelling)
}

// LookupKeyword classifies a spelling, ignoring case. The caller keeps
// the original text on the token.
func LookupKeyword(spelling string) (Kind, bool) {
	k, ok := keywords[foldSpelling(spelling)]
	return k, ok
}

// IsRemSpelling reports whether the spelling is the Rem comment marker.
func IsRemSpelling(spelling string) bool {
	return foldSpelling(spelling) == "rem"
}
