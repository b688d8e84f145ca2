package handler

type ContextKey string

var (
	UserTypeCtxKey  ContextKey = "userType"
	SubCtxKey       ContextKey = "sub"
	MyInfoCtx       ContextKey = "myInfo"
	UserInfoCtx     ContextKey = "userInfo"
	ParkingLotCtx   ContextKey = "parkingLot"
	NotificationCtx ContextKey = "notification"
)
