package res

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Err 业务错误，管道各步骤原样向上传递，最终由HandleError统一落地
type Err struct {
	Code    ResponseCode `json:"code"`
	Kind    string       `json:"kind,omitempty"`  // NotFound时的资源类型
	Field   string       `json:"field,omitempty"` // InvalidParameter时的出错字段
	Message string       `json:"message"`
}

func (e *Err) Error() string {
	return e.Message
}

// NotFoundErr 资源不存在
func NotFoundErr(kind string) *Err {
	return &Err{Code: NotFound, Kind: kind, Message: kind + "不存在"}
}

// InvalidParam 参数校验失败，field为出错字段名
func InvalidParam(field, msg string) *Err {
	return &Err{Code: InvalidParameter, Field: field, Message: msg}
}

// PermissionDeniedErr 权限不足
func PermissionDeniedErr(msg string) *Err {
	if msg == "" {
		msg = GetMsg(PermissionDenied)
	}
	return &Err{Code: PermissionDenied, Message: msg}
}

// EngineErr 搜索引擎返回异常状态，对外只暴露通用报错
func EngineErr() *Err {
	return &Err{Code: EngineError, Message: GetMsg(EngineError)}
}

// IsNotFound 判断错误是否为资源不存在
func IsNotFound(err error) bool {
	var e *Err
	if errors.As(err, &e) {
		return e.Code == NotFound
	}
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// HandleError 将管道错误映射为HTTP响应
// 未找到 -> 404；权限与参数错误 -> 4xx并带上出错字段；
// 引擎错误 -> 通用500，不透传引擎内部状态；其余一律500
func HandleError(c *gin.Context, err error) {
	var e *Err
	if errors.As(err, &e) {
		switch e.Code {
		case NotFound:
			HttpError(c, http.StatusNotFound, NotFound, e.Message)
		case InvalidParameter, MissingParameter, InvalidFormat:
			HttpErrorWithData(c, http.StatusBadRequest, e.Code, e.Message, gin.H{"field": e.Field})
		case PermissionDenied:
			HttpError(c, http.StatusForbidden, PermissionDenied, e.Message)
		case EngineError, ThirdPartyError:
			HttpError(c, http.StatusInternalServerError, ServerError, GetMsg(EngineError))
		default:
			HttpError(c, http.StatusInternalServerError, ServerError, GetMsg(ServerError))
		}
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		HttpError(c, http.StatusNotFound, NotFound, GetMsg(NotFound))
		return
	}
	HttpError(c, http.StatusInternalServerError, ServerError, GetMsg(ServerError))
}
