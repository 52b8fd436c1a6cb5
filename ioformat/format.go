package ioformat

import (
	"fmt"

	"github.com/adamnemecek/TuttePolynomial/poly"
)

// Label names which polynomial FormatPolynomial is printing, selecting
// tutte.cpp's "TP"/"FP"/"CP" assignment-variable prefix.
type Label int

const (
	LabelTutte Label = iota
	LabelChromatic
	LabelFlow
)

func (l Label) prefix() string {
	switch l {
	case LabelChromatic:
		return "CP"
	case LabelFlow:
		return "FP"
	default:
		return "TP"
	}
}

// FormatPolynomial renders p in tutte.cpp's Maple-assignment style, e.g.
// "TP[1] := x^3+3*x^2+2*x+4*x*y+2*y+3*y^2+y^3 :". idx is the 1-based
// position of this graph in the input batch.
func FormatPolynomial(label Label, idx int, p *poly.Polynomial) string {
	return fmt.Sprintf("%s[%d] := %s :", label.prefix(), idx, p.String())
}

// FormatEvalPoint renders one --eval=x,y result in tutte.cpp's
// "TP[1](x,y) = value" style.
func FormatEvalPoint(label Label, idx, x, y int, value fmt.Stringer) string {
	return fmt.Sprintf("%s[%d](%d,%d) = %s", label.prefix(), idx, x, y, value)
}
