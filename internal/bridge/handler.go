// Package bridge exposes the Data Store Manager as a set of named channels,
// the way a UI shell addresses it across a process boundary. Payloads and
// results are plain JSON-serializable values.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

var (
	ErrUnknownChannel = errors.New("unknown channel")
	ErrBadPayload     = errors.New("bad payload")
)

// DataManager is the operation set served over the bridge.
type DataManager interface {
	Login(ctx context.Context, username, password string) bool
	IsAuthenticated() bool
	GetInitialPassword(ctx context.Context) (string, bool)
	IsFirstRun() bool
	IsUsingDefaultPassword(ctx context.Context) bool
	ChangePassword(ctx context.Context, oldPassword, newPassword string) bool

	LoadData(ctx context.Context) *models.DataStore
	SaveData(ctx context.Context, doc *models.DataStore) bool

	AddNoteGroup(ctx context.Context, in models.NoteGroupInput) bool
	UpdateNoteGroup(ctx context.Context, id string, patch models.NoteGroupPatch) bool
	DeleteNoteGroup(ctx context.Context, id string) bool
	ReorderNoteGroups(ctx context.Context, ids []string) bool
	AddNoteItem(ctx context.Context, groupID string, in models.NoteItemInput) bool
	UpdateNoteItem(ctx context.Context, groupID, itemID string, patch models.NoteItemPatch) bool
	DeleteNoteItem(ctx context.Context, groupID, itemID string) bool
	ReorderNoteItems(ctx context.Context, groupID string, ids []string) bool

	ExportSimple(ctx context.Context) models.SimpleExport
	ExportMarkdown(ctx context.Context) string
	ExportFull(ctx context.Context) models.FullExport
	ImportFull(ctx context.Context, data *models.FullExport, mode models.ImportMode) bool

	ManualBackup(ctx context.Context) string
	ListBackups(ctx context.Context) []string
	RestoreBackup(ctx context.Context, name string) bool
	GetBackupConfig(ctx context.Context) models.BackupConfig
	SetBackupConfig(ctx context.Context, cfg models.BackupConfig) bool
	GetBackupDir() string
}

type handlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Bridge routes channel requests to a DataManager.
type Bridge struct {
	dm       DataManager
	logger   logging.Logger
	handlers map[string]handlerFunc
}

// New builds a Bridge serving dm.
func New(dm DataManager, logger logging.Logger) *Bridge {
	b := &Bridge{dm: dm, logger: logger.With("component", "bridge")}
	b.handlers = b.routes()
	return b
}

// Channels lists every channel name, sorted.
func (b *Bridge) Channels() []string {
	out := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Dispatch runs the operation behind channel with the given payload and
// returns its plain result. Operation failures are part of the result
// (false, nil, "" and so on); an error means the request itself could not
// be served: the channel is unknown or the payload does not decode.
func (b *Bridge) Dispatch(ctx context.Context, channel string, payload json.RawMessage) (any, error) {
	h, ok := b.handlers[channel]
	if !ok {
		b.logger.Warn(ctx, "unknown channel", "channel", channel)
		return nil, fmt.Errorf("%q: %w", channel, ErrUnknownChannel)
	}

	b.logger.Debug(ctx, "dispatch", "channel", channel)
	res, err := h(ctx, payload)
	if err != nil {
		b.logger.Warn(ctx, "request rejected", "channel", channel, "err", err)
		return nil, fmt.Errorf("%s: %w", channel, err)
	}
	return res, nil
}

func decode[T any](payload json.RawMessage) (T, error) {
	var v T
	if len(payload) == 0 {
		return v, fmt.Errorf("%w: empty", ErrBadPayload)
	}
	if err := json.Unmarshal(payload, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return v, nil
}

// with adapts an operation taking a decoded request into a handlerFunc.
func with[T any](fn func(ctx context.Context, req T) any) handlerFunc {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		req, err := decode[T](payload)
		if err != nil {
			return nil, err
		}
		return fn(ctx, req), nil
	}
}

// noArgs adapts an operation without a payload into a handlerFunc.
func noArgs(fn func(ctx context.Context) any) handlerFunc {
	return func(ctx context.Context, _ json.RawMessage) (any, error) {
		return fn(ctx), nil
	}
}

func (b *Bridge) routes() map[string]handlerFunc {
	dm := b.dm
	return map[string]handlerFunc{
		AuthLogin: with(func(ctx context.Context, r LoginRequest) any {
			return dm.Login(ctx, r.Username, r.Password)
		}),
		AuthCheck: noArgs(func(context.Context) any {
			return dm.IsAuthenticated()
		}),
		AuthGetInitialPassword: noArgs(func(ctx context.Context) any {
			if pw, ok := dm.GetInitialPassword(ctx); ok {
				return pw
			}
			return nil
		}),
		AuthIsFirstRun: noArgs(func(context.Context) any {
			return dm.IsFirstRun()
		}),
		AuthIsUsingDefaultPassword: noArgs(func(ctx context.Context) any {
			return dm.IsUsingDefaultPassword(ctx)
		}),
		AuthChangePassword: with(func(ctx context.Context, r ChangePasswordRequest) any {
			return dm.ChangePassword(ctx, r.OldPassword, r.NewPassword)
		}),
		AuthGetBackupPath: noArgs(func(context.Context) any {
			return dm.GetBackupDir()
		}),

		DataLoad: noArgs(func(ctx context.Context) any {
			if doc := dm.LoadData(ctx); doc != nil {
				return doc
			}
			return nil
		}),
		DataSave: with(func(ctx context.Context, doc *models.DataStore) any {
			return dm.SaveData(ctx, doc)
		}),

		NoteAddGroup: with(func(ctx context.Context, in models.NoteGroupInput) any {
			return dm.AddNoteGroup(ctx, in)
		}),
		NoteUpdateGroup: with(func(ctx context.Context, r UpdateGroupRequest) any {
			return dm.UpdateNoteGroup(ctx, r.ID, r.Updates)
		}),
		NoteDeleteGroup: with(func(ctx context.Context, r GroupRequest) any {
			return dm.DeleteNoteGroup(ctx, r.ID)
		}),
		NoteReorderGroups: with(func(ctx context.Context, r ReorderGroupsRequest) any {
			return dm.ReorderNoteGroups(ctx, r.IDs)
		}),
		NoteAddItem: with(func(ctx context.Context, r AddItemRequest) any {
			return dm.AddNoteItem(ctx, r.GroupID, r.Item)
		}),
		NoteUpdateItem: with(func(ctx context.Context, r UpdateItemRequest) any {
			return dm.UpdateNoteItem(ctx, r.GroupID, r.ItemID, r.Updates)
		}),
		NoteDeleteItem: with(func(ctx context.Context, r ItemRequest) any {
			return dm.DeleteNoteItem(ctx, r.GroupID, r.ItemID)
		}),
		NoteReorderItems: with(func(ctx context.Context, r ReorderItemsRequest) any {
			return dm.ReorderNoteItems(ctx, r.GroupID, r.IDs)
		}),

		ExportSimple: noArgs(func(ctx context.Context) any {
			return dm.ExportSimple(ctx)
		}),
		ExportMarkdown: noArgs(func(ctx context.Context) any {
			return dm.ExportMarkdown(ctx)
		}),
		ExportFull: noArgs(func(ctx context.Context) any {
			return dm.ExportFull(ctx)
		}),
		ImportFull: with(func(ctx context.Context, r ImportRequest) any {
			mode := r.Mode
			if m, err := models.ParseImportMode(string(r.Mode)); err == nil {
				mode = m
			}
			return dm.ImportFull(ctx, r.Data, mode)
		}),

		BackupManual: noArgs(func(ctx context.Context) any {
			return dm.ManualBackup(ctx)
		}),
		BackupList: noArgs(func(ctx context.Context) any {
			return dm.ListBackups(ctx)
		}),
		BackupRestore: with(func(ctx context.Context, r RestoreRequest) any {
			return dm.RestoreBackup(ctx, r.Filename)
		}),
		BackupGetConfig: noArgs(func(ctx context.Context) any {
			return dm.GetBackupConfig(ctx)
		}),
		BackupSetConfig: with(func(ctx context.Context, cfg models.BackupConfig) any {
			return dm.SetBackupConfig(ctx, cfg)
		}),
		BackupGetDir: noArgs(func(context.Context) any {
			return dm.GetBackupDir()
		}),
	}
}
