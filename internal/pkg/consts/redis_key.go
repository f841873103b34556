package consts

const (
	TokenDenyKey = "auth:token:deny:"
)

const (
	MetricsWarmLock = "lock:metrics:warm"
)
