// Package errors はgoregressが返すエラーと、モデルが致命的でない問題を通知する警告の仕組みを定義します。
//
// コンストラクタは全て cockroachdb/errors でスタックトレースを付与します。
// %+v で書式化すると生成箇所が表示されます。判定には本パッケージの Is / As を使います
// （標準ライブラリの errors.Is / errors.As でも辿れます）。
package errors

import "github.com/cockroachdb/errors"

// センチネルエラー。型付きエラーにマークまたはラップされて返るため Is で判定する。
var (
	// ErrLengthMismatch: x と y（またはサンプルとラベル）の件数が異なる
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrEmptyInput: サンプルが1件もない
	ErrEmptyInput = errors.New("empty input")

	// ErrDegenerateInput: x の分散が0で傾きが定まらない。退化チェック有効時のみ
	ErrDegenerateInput = errors.New("degenerate input")
)

// Is は err の連鎖に target が含まれるかを返す
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As は err の連鎖から target の型に一致する最初のエラーを取り出す
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New はスタック付きのエラーを作る
func New(msg string) error {
	return errors.New(msg)
}

// Newf は書式付きの New
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// Wrap は err に文脈を付け加える。err が nil なら nil
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf は書式付きの Wrap
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
