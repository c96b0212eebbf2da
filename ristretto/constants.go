package ristretto

import (
	"math/big"

	"filippo.io/edwards25519/field"
)

const (
	// PointSize is the length of a canonical point encoding.
	PointSize = 32
	// ScalarSize is the length of a canonical scalar encoding.
	ScalarSize = 32
	// WideScalarSize is the largest input accepted by wide reduction.
	WideScalarSize = 64
)

// groupOrder is l = 2^252 + 27742317777372353535851937790883648493.
var groupOrder, _ = new(big.Int).SetString(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

var (
	curveD = fieldElementFromDecimal(
		"37095705934669439343138083508754565189542113879843219016388785533085940283555")
	sqrtM1 = fieldElementFromDecimal(
		"19681161376707505956807079304988542015446066515923890162744021073123829784752")
	sqrtADMinusOne = fieldElementFromDecimal(
		"25063068953384623474111414158702152701244531502492656460079210482610430750235")
	invSqrtAMinusD = fieldElementFromDecimal(
		"54469307008909316920995813868745141605393597292927456921205312896311721017578")
	oneMinusDSQ = fieldElementFromDecimal(
		"1159843021668779879193775521855586647937357759715417654439879720876111806838")
	dMinusOneSQ = fieldElementFromDecimal(
		"40440834346308536858101042469323190826248399146238708352240133220865137265952")
)

// fieldElementFromDecimal panics if s is not a canonical base-10 field element.
func fieldElementFromDecimal(s string) *field.Element {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("ristretto: not a decimal number: " + s)
	}
	b := make([]byte, 32)
	n.FillBytes(b)
	reverse(b)
	fe, err := new(field.Element).SetBytes(b)
	if err != nil {
		panic(err)
	}
	return fe
}

// reverse converts between big-endian and little-endian in place.
func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
