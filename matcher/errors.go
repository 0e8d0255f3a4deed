package matcher

import "github.com/pkg/errors"

// ErrUnrecognizedSymbol 表示模式中出现了字母、数字和 '*' 之外的字符
var ErrUnrecognizedSymbol = errors.New("unrecognized pattern symbol")

func unrecognizedSymbol(r rune, position int) error {
	return errors.Wrapf(ErrUnrecognizedSymbol, "'%c' at position %d", r, position)
}
