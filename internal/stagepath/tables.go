package stagepath

import (
	"path"
	"strings"
)

// Extensions present in the base game's file listing. Anything else on disk
// (source files, .prcxml patches, notes) is ignored by the scan.
var allowedExts = map[string]bool{
	".adjb": true, ".arc": true, ".bin": true, ".bntx": true, ".eff": true,
	".h264": true, ".lc": true, ".lvd": true, ".nro": true, ".nuanmb": true,
	".nuhlpb": true, ".numatb": true, ".numdlb": true, ".numshb": true,
	".numshexb": true, ".nus3audio": true, ".nus3bank": true, ".nusktb": true,
	".nusrcmdlb": true, ".nutexb": true, ".prc": true, ".shpc": true,
	".shpcanim": true, ".sqb": true, ".stdat": true, ".stprm": true,
	".tonelabel": true, ".xmb": true,
}

// Order matters: SoundPaths and the database writer list banks in this order.
var soundExts = []string{".nus3audio", ".nus3bank", ".tonelabel"}

var uiNames = map[string]string{
	"battlefield_l": "BattleFieldL",
	"battlefield_s": "BattleFieldS",
}

var patchStages = map[string]bool{
	"brave_altar":    true,
	"jack_mementoes": true,
	"sp_edit":        true,
	"demon_dojo":     true,
	"ff_cave":        true,
	"buddy_spiral":   true,
	"pickel_world":   true,
	"dolly_stadium":  true,
	"xeno_alst":      true,
	"battlefield_s":  true,
	"homeruncontest": true,
	"trail_castle":   true,
	"fe_shrine":      true,
	"tantan_spring":  true,
}

// Stages that only have a normal form.
var noBattleStages = map[string]bool{
	"battlefield_l": true,
	"battlefield_s": true,
	"battlefield":   true,
	"end":           true,
}

// IsAllowed reports whether p has an extension known to the base game.
func IsAllowed(p string) bool {
	return allowedExts[strings.ToLower(path.Ext(Normalize(p)))]
}

// HasNoBattleForm reports whether the stage lacks separate battle/end forms.
func HasNoBattleForm(name string) bool {
	return noBattleStages[name]
}

// SoundExts returns the sound bank extensions in their canonical order.
func SoundExts() []string {
	return append([]string(nil), soundExts...)
}
