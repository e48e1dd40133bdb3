package collect

import (
	"fmt"
	"path/filepath"
	"time"
)

// FileSlug is the fixed base name shared by both output files.
const FileSlug = "censys_hosts_jp_moltbot_clawdbot"

// JST has no daylight saving, a fixed offset is exact.
var jst = time.FixedZone("JST", 9*60*60)

// DateJST formats t as YYYY-MM-DD in Japan Standard Time.
func DateJST(t time.Time) string {
	return t.In(jst).Format("2006-01-02")
}

// OutputPaths returns the JSONL and CSV paths for one run. The caller
// computes the date once so both files share it even when a run crosses
// midnight.
func OutputPaths(outDir, date string) (jsonlPath, csvPath string) {
	base := fmt.Sprintf("%s_%s", FileSlug, date)
	return filepath.Join(outDir, base+".jsonl"), filepath.Join(outDir, base+".csv")
}
