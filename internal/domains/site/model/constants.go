package model

// Count cache nằm trong namespace của từng collection để write bên đó tự invalidate
const (
	CacheKeyMemberCount    = "team:count"
	CacheKeyHackathonCount = "achievements:count"
)
