// Package render writes collected records to a terminal or as JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/michaelscutari/sls/internal/entry"
	"github.com/michaelscutari/sls/internal/pathutil"
	"github.com/michaelscutari/sls/internal/units"
)

// TimeLayout is how modification times are displayed, in the local zone.
const TimeLayout = "2006-01-02 15:04:05"

// FileInfo is the JSON shape of one record.
type FileInfo struct {
	Path        string  `json:"path"`
	Size        uint64  `json:"size"`
	Modified    *string `json:"modified"`
	IsDir       bool    `json:"is_dir"`
	Permissions string  `json:"permissions"`
}

// NewFileInfo converts a record to its JSON shape.
func NewFileInfo(r entry.Record) FileInfo {
	fi := FileInfo{
		Path:        r.Path,
		Size:        r.Size,
		IsDir:       r.IsDir(),
		Permissions: r.Permission.String(),
	}
	if r.ModTime != nil {
		s := FormatTime(*r.ModTime)
		fi.Modified = &s
	}
	return fi
}

// FormatTime renders a modification time in the local zone.
func FormatTime(t time.Time) string {
	return t.Local().Format(TimeLayout)
}

// JSON writes records as an indented array. An empty result is "[]".
func JSON(w io.Writer, records []entry.Record) error {
	out := make([]FileInfo, 0, len(records))
	for _, r := range records {
		out = append(out, NewFileInfo(r))
	}

	// Paths are written literally; '&', '<' and '>' are not escaped.
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return nil
}

// TextOptions controls the decorated text listing.
type TextOptions struct {
	Styles Styles
	// Human renders sizes as "1.50KB" instead of "1536 bytes".
	Human bool
}

// Text writes one decorated line per record:
//
//	{icon} {path}  {size} bytes  {perm}   {modified|unknown}
func Text(w io.Writer, records []entry.Record, opts TextOptions) error {
	for _, r := range records {
		if _, err := io.WriteString(w, Line(r, opts)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Line formats a single record for Text.
func Line(r entry.Record, opts TextOptions) string {
	icon := Icon(r.IsDir(), pathutil.Base(r.Path))

	name := opts.Styles.File.Render(r.Path)
	if r.IsDir() {
		name = opts.Styles.Dir.Render(r.Path)
	}

	size := strconv.FormatUint(r.Size, 10) + " bytes"
	if opts.Human {
		size = units.FormatSize(r.Size)
	}

	modified := "unknown"
	if r.ModTime != nil {
		modified = FormatTime(*r.ModTime)
	}

	return fmt.Sprintf("%s %s  %s  %s   %s", icon, name, size, r.Permission, modified)
}
