package model

const (
	CacheKeyList   = "team:list"
	CachePattern   = "team:*"
	FormDataField  = "data"
	FormImageField = "image"
)
