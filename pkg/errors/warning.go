package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/rs/zerolog"
)

// 警告の送り先。sink が設定されていればそちらを優先する
var warnings = struct {
	sync.Mutex
	handler func(error)
	sink    func(error)
}{
	handler: func(w error) { log.Printf("goregress-warning: %v", w) },
}

// SetWarningHandler は既定の警告ハンドラを差し替える。nil で警告を捨てる
func SetWarningHandler(handler func(w error)) {
	warnings.Lock()
	warnings.handler = handler
	warnings.Unlock()
}

// SetWarnFunc は構造化ロガーへの送り先を設定する（pkg/log.RouteWarnings が使う）。
// nil で解除すると SetWarningHandler のハンドラに戻る。
func SetWarnFunc(fn func(warning error)) {
	warnings.Lock()
	warnings.sink = fn
	warnings.Unlock()
}

// Warn は w を現在の送り先に渡す。送り先はロックの外で呼ぶので、
// 送り先の中から Warn を呼んでもよい。
func Warn(w error) {
	warnings.Lock()
	dst := warnings.handler
	if warnings.sink != nil {
		dst = warnings.sink
	}
	warnings.Unlock()
	if dst != nil {
		dst(w)
	}
}

// DegenerateInputWarning は学習結果の一部が NaN/Inf になったことを表す。
// x が全て同じ値だと傾きの分母が0になり、切片と R² にも伝播する。
type DegenerateInputWarning struct {
	Op       string
	Quantity string // "slope", "intercept", "r_squared"
	Value    float64
}

func NewDegenerateInputWarning(op, quantity string, value float64) *DegenerateInputWarning {
	return &DegenerateInputWarning{Op: op, Quantity: quantity, Value: value}
}

func (w *DegenerateInputWarning) Error() string {
	return fmt.Sprintf("%s: %s is %v (degenerate input)", w.Op, w.Quantity, w.Value)
}

func (w *DegenerateInputWarning) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("error_type", "DegenerateInputWarning").
		Str("op", w.Op).
		Str("quantity", w.Quantity).
		Float64("value", w.Value)
}
