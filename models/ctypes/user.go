package ctypes

// UserRole 用户角色
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest" // 未登录访客
)

// SessionUser 请求会话中的用户身份，由会话中间件解析后放入上下文
type SessionUser struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}

// IsGuest 判断是否为未登录访客
func (u *SessionUser) IsGuest() bool {
	return u == nil || u.Role == RoleGuest || u.Role == ""
}
