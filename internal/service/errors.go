package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	ServiceUnavailable  = 503
	InternalServerError = 500
)

var (
	ErrParamInvalid    = errors.New("参数错误")
	ErrEmptyContent    = errors.New("内容不能为空")
	ErrGoalEmpty       = errors.New("目标不能为空")
	ErrMetricsDisabled = errors.New("每日统计未启用")
	ErrMetricNotFound  = errors.New("统计数据不存在")
	ErrLockNotAcquired = errors.New("任务正在执行")
	UnExpectedError    = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrEmptyContent:    BadRequest,
	ErrGoalEmpty:       BadRequest,
	ErrMetricsDisabled: ServiceUnavailable,
	ErrMetricNotFound:  NotFound,
	ErrLockNotAcquired: InternalServerError,
	UnExpectedError:    InternalServerError,
}
