package bridge

import "github.com/dmitrijs2005/notekeeper/internal/models"

// Channel names of the boundary operations.
const (
	AuthLogin                  = "auth:login"
	AuthCheck                  = "auth:check"
	AuthGetInitialPassword     = "auth:getInitialPassword"
	AuthIsFirstRun             = "auth:isFirstRun"
	AuthIsUsingDefaultPassword = "auth:isUsingDefaultPassword"
	AuthChangePassword         = "auth:changePassword"
	AuthGetBackupPath          = "auth:getBackupPath"

	DataLoad = "data:load"
	DataSave = "data:save"

	NoteAddGroup      = "note:addGroup"
	NoteUpdateGroup   = "note:updateGroup"
	NoteDeleteGroup   = "note:deleteGroup"
	NoteReorderGroups = "note:reorderGroups"
	NoteAddItem       = "note:addItem"
	NoteUpdateItem    = "note:updateItem"
	NoteDeleteItem    = "note:deleteItem"
	NoteReorderItems  = "note:reorderItems"

	ExportSimple   = "export:simple"
	ExportMarkdown = "export:markdown"
	ExportFull     = "export:full"
	ImportFull     = "import:full"

	BackupManual    = "backup:manual"
	BackupList      = "backup:list"
	BackupRestore   = "backup:restore"
	BackupGetConfig = "backup:getConfig"
	BackupSetConfig = "backup:setConfig"
	BackupGetDir    = "backup:getDir"
)

// Open reports whether channel can be served without an authenticated
// session.
func Open(channel string) bool {
	switch channel {
	case AuthLogin, AuthCheck, AuthGetInitialPassword, AuthIsFirstRun, AuthIsUsingDefaultPassword:
		return true
	}
	return false
}

// Request payloads. Channels not listed here take no payload, and a
// payload sent to them is ignored.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type UpdateGroupRequest struct {
	ID      string                `json:"id"`
	Updates models.NoteGroupPatch `json:"updates"`
}

type GroupRequest struct {
	ID string `json:"id"`
}

type ReorderGroupsRequest struct {
	IDs []string `json:"ids"`
}

type AddItemRequest struct {
	GroupID string               `json:"groupId"`
	Item    models.NoteItemInput `json:"item"`
}

type UpdateItemRequest struct {
	GroupID string               `json:"groupId"`
	ItemID  string               `json:"itemId"`
	Updates models.NoteItemPatch `json:"updates"`
}

type ItemRequest struct {
	GroupID string `json:"groupId"`
	ItemID  string `json:"itemId"`
}

type ReorderItemsRequest struct {
	GroupID string   `json:"groupId"`
	IDs     []string `json:"ids"`
}

type ImportRequest struct {
	Data *models.FullExport `json:"data"`
	Mode models.ImportMode  `json:"mode"`
}

type RestoreRequest struct {
	Filename string `json:"filename"`
}
