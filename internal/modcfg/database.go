package modcfg

import (
	"fmt"
	"path/filepath"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/danieljhkim/stagereslot/internal/fsops"
	"github.com/danieljhkim/stagereslot/internal/stagepath"
)

const (
	// DatabaseDir holds per-stage database records, relative to the mod root.
	DatabaseDir = "database"

	defaultDispOrder = 127

	// sqb bank shared by every stage
	stageSQBHash = "0x27ad9b4322"
)

// DatabaseOptions are the operator's optional overrides.
type DatabaseOptions struct {
	// BGMSetID selects a music set; empty keeps the cloned stage's
	BGMSetID string

	// BGMSettingNo is the playlist index, only written with BGMSetID
	BGMSettingNo int

	// SeriesID selects the UI series; empty keeps the cloned stage's
	SeriesID string
}

// StageEntry is the stage database record.
type StageEntry struct {
	UIStageID          string `json:"ui_stage_id"`
	CloneFromUIStageID string `json:"clone_from_ui_stage_id"`
	NameID             string `json:"name_id"`
	DispOrder          int    `json:"disp_order"`
	IsDLC              bool   `json:"is_dlc"`
	BGMSetID           string `json:"bgm_set_id,omitempty"`
	BGMSettingNo       *int   `json:"bgm_setting_no,omitempty"`
	UISeriesID         string `json:"ui_series_id,omitempty"`
	StagePlaceID       string `json:"stage_place_id,omitempty"`
	SecretStagePlaceID string `json:"secret_stage_place_id,omitempty"`
}

// StageResources lists the resource paths one stage form loads.
type StageResources struct {
	StageLoadGroupHash  string `json:"stage_load_group_hash"`
	EffectLoadGroupHash string `json:"effect_load_group_hash"`
	NUS3BankPathHash    string `json:"nus3bank_path_hash"`
	SQBPathHash         string `json:"sqb_path_hash"`
	NUS3AudioPathHash   string `json:"nus3audio_path_hash"`
	TonelabelPathHash   string `json:"tonelabel_path_hash"`
}

// ResourceRedirection points one form of the base stage at the new stage's resources.
type ResourceRedirection struct {
	UIStageID string                    `json:"ui_stage_id"`
	Resources map[string]StageResources `json:"resources"`
}

// Database is the stage database file. Redirection entries are keyed by
// base stage form ("dk_waterfall", "end_dk_waterfall", "battle_dk_waterfall")
// and stay in that order.
type Database struct {
	StageDatabaseEntries            []StageEntry                                          `json:"stage_database_entries"`
	StageResourceRedirectionEntries *orderedmap.OrderedMap[string, []ResourceRedirection] `json:"stage_resource_redirection_entries"`
}

// Forms in output order. folder is the stage folder a form loads when the
// base stage has battle forms.
var variantForms = []struct {
	prefix   string
	resource string
	folder   string
}{
	{prefix: "", resource: "normal", folder: "normal"},
	{prefix: "end_", resource: "end", folder: "battle"},
	{prefix: "battle_", resource: "battle", folder: "battle"},
}

// NewDatabase builds the database record cloning base into current.
// Stages without battle forms load the normal folder for every form and
// keep their place ids.
func NewDatabase(base, current string, opts DatabaseOptions) *Database {
	entry := StageEntry{
		UIStageID:          "ui_stage_" + current,
		CloneFromUIStageID: "ui_stage_" + base,
		NameID:             current,
		DispOrder:          defaultDispOrder,
		IsDLC:              false,
	}
	if opts.BGMSetID != "" {
		entry.BGMSetID = opts.BGMSetID
		n := opts.BGMSettingNo
		entry.BGMSettingNo = &n
	}
	if opts.SeriesID != "" {
		entry.UISeriesID = opts.SeriesID
	}

	noBattle := stagepath.HasNoBattleForm(base)
	if noBattle {
		entry.StagePlaceID = base
		entry.SecretStagePlaceID = base
	}

	exts := stagepath.SoundExts()
	banks := make(map[string]string, len(exts))
	for i, p := range stagepath.SoundPaths(current) {
		banks[exts[i]] = p
	}

	variants := orderedmap.New[string, []ResourceRedirection]()
	for _, form := range variantForms {
		folder := form.folder
		if noBattle {
			folder = "normal"
		}
		variants.Set(form.prefix+base, []ResourceRedirection{{
			UIStageID: "ui_stage_" + current,
			Resources: map[string]StageResources{
				form.resource: {
					StageLoadGroupHash:  stagepath.StageDir(current) + "/" + folder,
					EffectLoadGroupHash: "effect/stage/" + current,
					NUS3BankPathHash:    banks[".nus3bank"],
					SQBPathHash:         stageSQBHash,
					NUS3AudioPathHash:   banks[".nus3audio"],
					TonelabelPathHash:   banks[".tonelabel"],
				},
			},
		}})
	}

	return &Database{
		StageDatabaseEntries:            []StageEntry{entry},
		StageResourceRedirectionEntries: variants,
	}
}

// DatabasePath returns database/<stage>.json relative to the mod root.
func DatabasePath(stage string) string {
	return filepath.Join(DatabaseDir, stage+".json")
}

// WriteDatabase writes database/<current>.json, replacing any existing file.
func WriteDatabase(fs fsops.FS, root, current string, d *Database) (string, error) {
	data, err := encodeIndented(d)
	if err != nil {
		return "", fmt.Errorf("failed to encode database: %w", err)
	}
	path := filepath.Join(root, DatabasePath(current))
	if err := fs.AtomicWrite(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
