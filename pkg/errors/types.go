package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

const prefix = "goregress: "

// NotFittedError: 学習前のモデルで学習結果が必要な操作を呼んだ
type NotFittedError struct {
	ModelName string
	Method    string
}

func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf(prefix+"%s.%s called before Fit", e.ModelName, e.Method)
}

func (e *NotFittedError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("error_type", "NotFittedError").
		Str("model", e.ModelName).
		Str("method", e.Method)
}

// DimensionError: ある軸の長さが期待と異なる。Axis 0 は行（サンプル）、1 は列（特徴量）
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// NewLengthMismatchError は行数の不一致を表す DimensionError を返す。
// Is(err, ErrLengthMismatch) が真になる。
func NewLengthMismatchError(op string, xLen, yLen int) error {
	dim := &DimensionError{Op: op, Expected: xLen, Got: yLen}
	return errors.WithStack(errors.Mark(dim, ErrLengthMismatch))
}

func (e *DimensionError) Error() string {
	axis := "samples"
	if e.Axis == 1 {
		axis = "features"
	}
	return fmt.Sprintf(prefix+"%s: %s: want %d, got %d", e.Op, axis, e.Expected, e.Got)
}

func (e *DimensionError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("error_type", "DimensionError").
		Str("op", e.Op).
		Int("axis", e.Axis).
		Int("expected", e.Expected).
		Int("got", e.Got)
}

// InputShapeError: 行ごとの特徴量数が揃っていない。Row が -1 なら行に依らない
type InputShapeError struct {
	Phase    string // "training" または "prediction"
	Row      int
	Expected []int
	Got      []int
}

func NewInputShapeError(phase string, row int, expected, got []int) error {
	return errors.WithStack(&InputShapeError{Phase: phase, Row: row, Expected: expected, Got: got})
}

func (e *InputShapeError) Error() string {
	where := e.Phase
	if e.Row >= 0 {
		where = fmt.Sprintf("%s row %d", e.Phase, e.Row)
	}
	return fmt.Sprintf(prefix+"bad input shape in %s: want %v, got %v", where, e.Expected, e.Got)
}

func (e *InputShapeError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("error_type", "InputShapeError").
		Str("phase", e.Phase).
		Int("row", e.Row).
		Ints("expected", e.Expected).
		Ints("got", e.Got)
}

// ValidationError: 引数や読み込んだパラメータが制約を満たさない
type ValidationError struct {
	Param  string
	Reason string
	Value  interface{}
}

func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{Param: param, Reason: reason, Value: value})
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(prefix+"invalid %s (%v): %s", e.Param, e.Value, e.Reason)
}

func (e *ValidationError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("error_type", "ValidationError").
		Str("param", e.Param).
		Str("reason", e.Reason).
		Interface("value", e.Value)
}

// NewEmptyInputError は空の入力を表す ValueError を返す。
// Is(err, ErrEmptyInput) が真になる。
func NewEmptyInputError(op, message string) error {
	return errors.WithStack(errors.Mark(&ValueError{Op: op, Message: message}, ErrEmptyInput))
}

// ValueError: 値そのものが計算に使えない（空のベクトルなど）
type ValueError struct {
	Op      string
	Message string
}

func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

func (e *ValueError) Error() string {
	return prefix + e.Op + ": " + e.Message
}

// ModelError: モデルの操作が失敗した。Err に原因（センチネルを含む）を保持する
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func NewModelError(op, kind string, cause error) error {
	return errors.WithStack(&ModelError{Op: op, Kind: kind, Err: cause})
}

func (e *ModelError) Error() string {
	msg := prefix + e.Op + ": " + e.Kind
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ModelError) Unwrap() error { return e.Err }

func (e *ModelError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("error_type", "ModelError").
		Str("op", e.Op).
		Str("kind", e.Kind)
}
