package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Token scanner findings.
	LexTruncated Code = 1001

	// Grammar findings.
	SynParse Code = 2001

	// File loading.
	IORead Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:  "Unknown error",
	LexTruncated: "Token stream ends before the file does",
	SynParse:     "Syntax error",
	IORead:       "Cannot read source file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
