package apperrors

// 错误码（1xxx 报名与名单，2xxx 场地操作）
const (
	CodeDuplicateName  = 1001
	CodeCapacity       = 1002
	CodePlayerNotFound = 1003
	CodeInvalidCourt   = 2001
	CodeCourtNotFull   = 2002
	CodeInvalidTeam    = 2003
)

// SessionError 轮转引擎错误（引擎与展示层共享）
type SessionError struct {
	Code    int
	Message string
}

func (e *SessionError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrDuplicateName  = &SessionError{Code: CodeDuplicateName, Message: "玩家名称已存在"}
	ErrCapacity       = &SessionError{Code: CodeCapacity, Message: "超出本场人数上限"}
	ErrPlayerNotFound = &SessionError{Code: CodePlayerNotFound, Message: "找不到该玩家"}
	ErrInvalidCourt   = &SessionError{Code: CodeInvalidCourt, Message: "场地编号无效"}
	ErrCourtNotFull   = &SessionError{Code: CodeCourtNotFull, Message: "场地未满四人，无法记录对局"}
	ErrInvalidTeam    = &SessionError{Code: CodeInvalidTeam, Message: "队伍标识无效"}
)
