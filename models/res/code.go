package res

// ResponseCode 响应码类型
type ResponseCode int

const (
	// 客户端错误码 (1000-1999)
	// 通用客户端错误 (1000-1099)
	BadRequest       ResponseCode = 1000 // 错误的请求
	Unauthorized     ResponseCode = 1001 // 未授权
	Forbidden        ResponseCode = 1003 // 禁止访问
	NotFound         ResponseCode = 1004 // 资源未找到
	MethodNotAllowed ResponseCode = 1005 // 方法不允许

	// 参数验证错误 (1100-1199)
	InvalidParameter ResponseCode = 1100 // 无效的参数
	MissingParameter ResponseCode = 1101 // 缺少参数
	InvalidFormat    ResponseCode = 1102 // 格式错误

	// 认证授权错误 (1200-1299)
	TokenExpired     ResponseCode = 1200 // 令牌过期
	TokenInvalid     ResponseCode = 1201 // 令牌无效
	PermissionDenied ResponseCode = 1204 // 权限不足

	// 服务端错误码 (2000-2999)
	// 通用服务端错误 (2000-2099)
	ServerError        ResponseCode = 2000 // 服务器内部错误
	ServiceUnavailable ResponseCode = 2001 // 服务不可用

	// 数据库相关错误 (2100-2199)
	DBError      ResponseCode = 2100 // 数据库错误
	DBQueryError ResponseCode = 2102 // 数据库查询错误

	// 缓存相关错误 (2200-2299)
	CacheError ResponseCode = 2200 // 缓存错误

	// 第三方服务错误 (2300-2399)
	ThirdPartyError ResponseCode = 2300 // 第三方服务错误
	EngineError     ResponseCode = 2301 // 搜索引擎错误
)

// CodeMsg 错误码消息映射
var CodeMsg = map[ResponseCode]string{
	BadRequest:       "请求参数错误",
	Unauthorized:     "未授权访问",
	Forbidden:        "禁止访问",
	NotFound:         "资源不存在",
	MethodNotAllowed: "请求方法不允许",

	InvalidParameter: "无效的参数",
	MissingParameter: "缺少必要参数",
	InvalidFormat:    "数据格式错误",

	TokenExpired:     "令牌已过期",
	TokenInvalid:     "令牌无效",
	PermissionDenied: "权限不足",

	ServerError:        "服务器内部错误",
	ServiceUnavailable: "服务不可用",

	DBError:      "数据库操作失败",
	DBQueryError: "数据库查询失败",

	CacheError: "缓存操作失败",

	ThirdPartyError: "第三方服务错误",
	EngineError:     "搜索服务暂不可用",
}

// GetMsg 获取错误码对应的消息
func GetMsg(code ResponseCode) string {
	msg, ok := CodeMsg[code]
	if ok {
		return msg
	}
	return "未知错误"
}
