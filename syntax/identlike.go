package syntax

// softKeywords enumerates every keyword kind the parser is allowed to
// reinterpret as a plain identifier. VB6 reserves only part of its
// keyword vocabulary; the rest, mostly library-statement names and
// file-mode words, are legal variable, member, and procedure names.
//
// The set is an explicit table on purpose. It was assembled from the
// positions where real-world VB6 accepts these spellings as names, and
// parser behavior must be validated against that corpus rather than
// re-derived from the grammar.
var softKeywords = map[Kind]bool{
	KwAccess:        true,
	KwAlias:         true,
	KwAny:           true,
	KwAppActivate:   true,
	KwAppend:        true,
	KwBase:          true,
	KwBeep:          true,
	KwBegin:         true,
	KwBinary:        true,
	KwChDir:         true,
	KwChDrive:       true,
	KwClass:         true,
	KwClose:         true,
	KwCompare:       true,
	KwDatabase:      true,
	KwDate:          true,
	KwDeleteSetting: true,
	KwError:         true,
	KwEvent:         true,
	KwExplicit:      true,
	KwFileCopy:      true,
	KwGet:           true,
	KwInput:         true,
	KwKill:          true,
	KwLen:           true,
	KwLib:           true,
	KwLine:          true,
	KwLoad:          true,
	KwLock:          true,
	KwMid:           true,
	KwMidB:          true,
	KwMkDir:         true,
	KwModule:        true,
	KwName:          true,
	KwObject:        true,
	KwOpen:          true,
	KwOutput:        true,
	KwPrint:         true,
	KwProperty:      true,
	KwPut:           true,
	KwRandom:        true,
	KwRandomize:     true,
	KwRead:          true,
	KwReset:         true,
	KwRmDir:         true,
	KwSavePicture:   true,
	KwSaveSetting:   true,
	KwSeek:          true,
	KwSendKeys:      true,
	KwSetAttr:       true,
	KwStep:          true,
	KwText:          true,
	KwTime:          true,
	KwUnload:        true,
	KwUnlock:        true,
	KwVersion:       true,
	KwWidth:         true,
	KwWrite:         true,
}

// IdentLike reports whether a keyword kind may be reinterpreted as an
// identifier. The parser consults this only at defined grammatical
// positions: statement head, member name after '.', declared names,
// labels, and expression operands.
func IdentLike(k Kind) bool {
	return softKeywords[k]
}
