package service

// CanMutate 判斷呼叫者是否可修改（更新或刪除）屬於 ownerID 的資源：
// 管理員或擁有者本人才允許。ownerID 為 NULL（擁有者已被刪除）時僅管理員可修改。
// 僅用於既存資源的寫入檢查；建立與讀取不經過此判斷。
func CanMutate(claims *Claims, ownerID *int) bool {
	if claims.IsAdmin {
		return true
	}
	return ownerID != nil && *ownerID == claims.UserID
}
