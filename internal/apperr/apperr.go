package apperr

import (
	"errors"
	"fmt"
)

// Kind 错误分类
type Kind int

const (
	KindValidation Kind = iota // 请求参数校验失败
	KindNotFound               // 记录不存在
	KindUpstream               // 上游固定服务调用失败
	KindStorage                // 存储层读写失败
)

// Error 带分类的业务错误
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New 创建业务错误
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf 创建带格式化消息的业务错误
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap 包装底层错误
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Validation 参数校验错误
func Validation(msg string) *Error {
	return New(KindValidation, msg)
}

// NotFound 记录不存在错误
func NotFound(msg string) *Error {
	return New(KindNotFound, msg)
}

// Upstream 上游服务错误
func Upstream(msg string, err error) *Error {
	return Wrap(KindUpstream, msg, err)
}

// Storage 存储层错误
func Storage(msg string, err error) *Error {
	return Wrap(KindStorage, msg, err)
}

// KindOf 提取错误分类，未分类的错误按存储层错误处理
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// IsKind 判断错误是否属于指定分类
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
