package parser_test

import (
	"strings"
	"testing"
)

// Round-trip seeds: the tree must reproduce every input byte-for-byte,
// well-formed or not. parse() checks that through the tree invariants;
// this table pins down the error expectation per input.
func TestRoundTripSeeds(t *testing.T) {
	seeds := []struct {
		name     string
		src      string
		wantErrs bool
	}{
		{"empty", "", false},
		{"no final newline", "x = 1", false},
		{"crlf endings", "x = 1\r\ny = 2\r\n", false},
		{"colon chain", "a = 1: b = 2: c = 3\n", false},
		{"module header", "Attribute VB_Name = \"Main\"\nOption Explicit\n", false},
		{"continued call", "Debug.Print a, _\n            b\n", false},
		{"mixed casing", "dIM x aS lONG\nIF x THEN x = 0\n", false},
		{"comment styles", "' apostrophe\nRem statement\nx = 1 ' trailing\n", false},
		{"unknown bytes", "x = 1\n\x01\x02\x03\n", true},
		{"unterminated string", "s = \"oops\n", true},
		{"lone operator", "+\n", true},
		{"stray closer", "End With\n", true},
		{"deep nesting", strings.Repeat("If a Then\n", 20) + strings.Repeat("End If\n", 20), false},
		{"unbalanced nesting", "Do\nIf a Then\nLoop\n", true},
		{"everything at once", "Sub f(\nDim = ,\nx = ((1\n", true},
	}
	for _, tc := range seeds {
		t.Run(tc.name, func(t *testing.T) {
			tree, bag := parse(t, tc.src)
			if got := tree.Text(tree.Root()); got != tc.src {
				t.Errorf("round trip broke:\n got %q\nwant %q", got, tc.src)
			}
			if tc.wantErrs != bag.HasErrors() {
				t.Errorf("hasErrors = %v, want %v (%v)", bag.HasErrors(), tc.wantErrs, bag.Items())
			}
		})
	}
}

func TestRealisticModuleRoundTrip(t *testing.T) {
	src := `Attribute VB_Name = "OrderQueue"
Option Explicit

Private Const MAX_ITEMS As Long = 64

Private Type Entry
    Id As Long
    Label As String * 32
End Type

Private items(1 To MAX_ITEMS) As Entry
Private count As Long

Public Function Push(ByVal id As Long, ByVal label As String) As Boolean
    If count >= MAX_ITEMS Then
        Push = False
        Exit Function
    End If
    count = count + 1
    With items(count)
        .Id = id
        .Label = label
    End With
    Push = True
End Function

Public Sub Drain()
    Dim i As Long
    On Error GoTo cleanup
    For i = 1 To count
        Debug.Print items(i).Id; items(i).Label
    Next i
cleanup:
    count = 0
End Sub
`
	tree, bag := parse(t, src)
	wantClean(t, bag)
	if got := tree.Text(tree.Root()); got != src {
		t.Errorf("module did not round trip")
	}
}
