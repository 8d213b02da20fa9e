package output

import (
	"fmt"
	"html/template"
	"os"

	"github.com/sdejongh/checknorris/pkg/models"
)

// HTMLEmitter renders the report as a standalone human-readable page
type HTMLEmitter struct {
	// Path is the output file location
	Path string
}

// NewHTMLEmitter creates an HTML report emitter
func NewHTMLEmitter(path string) *HTMLEmitter {
	return &HTMLEmitter{Path: path}
}

type htmlDirectory struct {
	Name    string
	Summary models.DirectorySummary
}

type htmlView struct {
	Report      *models.VerifyReport
	Directories []htmlDirectory
	Missing     []models.MissingEntry
	Mismatches  []models.MismatchEntry
}

var htmlFuncs = template.FuncMap{
	"epoch": formatEpochUTC,
	"size": func(size *int64) string {
		if size == nil {
			return "—"
		}
		return formatSize(size)
	},
	"glyph": func(ok bool) string {
		if ok {
			return "✓"
		}
		return "✗"
	},
	"delta": func(d *float64) string {
		if d == nil {
			return "—"
		}
		return fmt.Sprintf("%.2f", *d)
	},
}

var htmlTemplate = template.Must(template.New("report").Funcs(htmlFuncs).Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8" />
<title>Sync Verification Report</title>
<style>
  body { font-family: sans-serif; margin: 24px; color: #111; }
  table { border-collapse: collapse; margin: 12px 0; }
  th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
  th { background: #f3f4f6; }
  code { background: #f9fafb; padding: 1px 4px; }
  .pass { color: #15803d; }
  .fail { color: #b91c1c; }
  .nav { margin: 16px 0; }
  .nav a {
    display: inline-block; margin-right: 10px; padding: 6px 12px;
    border: 1px solid #ccc; border-radius: 6px;
    text-decoration: none; background: #f9fafb; color: #111;
  }
  .nav a:hover { background: #e5e7eb; }
</style>
</head>
<body>
  <h1>Sync Verification Report</h1>
  <div class="meta">
    Generated: <strong>{{.Report.GeneratedAt.Format "2006-01-02T15:04:05Z07:00"}}</strong><br/>
    Runtime: <strong>{{printf "%.2f" .Report.ElapsedSeconds}} seconds</strong><br/>
    Source: <code>{{.Report.SrcRemote}}</code> → Destination: <code>{{.Report.DstRemote}}</code><br/>
    Case-insensitive: {{.Report.CaseInsensitive}}; modtime tolerance ±{{.Report.ModTimeToleranceSeconds}}s; junk files ignored.
  </div>

  <div class="nav">
    <a href="#summary">Summary</a>
    <a href="#directories">Directories</a>
    <a href="#missing">Missing</a>
    <a href="#mismatches">Mismatches</a>
  </div>

  <h2 id="summary">Summary</h2>
  <table>
    <tr><th>Status</th><td class="{{.Report.Status}}">{{.Report.Status}}</td></tr>
    <tr><th>Source files</th><td>{{.Report.Counts.TotalSrcFiles}}</td></tr>
    <tr><th>Matched</th><td>{{.Report.Counts.Matched}}</td></tr>
    <tr><th>Missing on destination</th><td>{{.Report.Counts.MissingOnDst}}</td></tr>
    <tr><th>Mismatches</th><td>{{.Report.Counts.Mismatches}}</td></tr>
    <tr><th>Total size</th><td>{{printf "%.2f" .Report.TotalSizeGB}} GB</td></tr>
  </table>

  <h2 id="directories">Directories ({{len .Directories}})</h2>
  <table>
    <tr><th></th><th>Directory</th><th>Files</th><th>Matched</th><th>Missing</th><th>Mismatches</th><th>Size (GB)</th></tr>
    {{range .Directories}}
    <tr>
      <td>{{glyph .Summary.AllSynced}}</td>
      <td><code>{{if .Name}}{{.Name}}{{else}}(root){{end}}</code></td>
      <td>{{.Summary.TotalFiles}}</td>
      <td>{{.Summary.Matched}}</td>
      <td>{{.Summary.Missing}}</td>
      <td>{{.Summary.Mismatches}}</td>
      <td>{{printf "%.2f" .Summary.SizeGB}}</td>
    </tr>
    {{end}}
  </table>

  <h2 id="missing">Missing on destination ({{len .Missing}})</h2>
  <table>
    <tr><th>Path</th><th>Size</th><th>Modified</th></tr>
    {{range .Missing}}
    <tr><td><code>{{.Path}}</code></td><td>{{size .Size}}</td><td>{{epoch .ModTime}}</td></tr>
    {{end}}
  </table>

  <h2 id="mismatches">Mismatches (size and/or modtime) ({{len .Mismatches}})</h2>
  <table>
    <tr><th>Path</th><th>Src size</th><th>Dst size</th><th>Size equal</th><th>Src modified</th><th>Dst modified</th><th>Delta (s)</th><th>Within tolerance</th></tr>
    {{range .Mismatches}}
    <tr>
      <td><code>{{.Path}}</code></td>
      <td>{{size .SrcSize}}</td>
      <td>{{size .DstSize}}</td>
      <td>{{.SizeEqual}}</td>
      <td>{{epoch .SrcModTime}}</td>
      <td>{{epoch .DstModTime}}</td>
      <td>{{delta .ModTimeDiffSeconds}}</td>
      <td>{{.WithinTolerance}}</td>
    </tr>
    {{end}}
  </table>
</body>
</html>
`))

// Emit renders the report page
func (e *HTMLEmitter) Emit(report *models.VerifyReport) error {
	view := htmlView{
		Report:     report,
		Missing:    sortedMissing(report.MissingOnDst),
		Mismatches: sortedMismatches(report.Mismatches),
	}
	for _, name := range sortedDirNames(report.Directories) {
		view.Directories = append(view.Directories, htmlDirectory{
			Name:    name,
			Summary: report.Directories[name],
		})
	}

	f, err := os.Create(e.Path)
	if err != nil {
		return fmt.Errorf("failed to create HTML report: %w", err)
	}
	defer f.Close()

	if err := htmlTemplate.Execute(f, view); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}

	return nil
}

// Name returns the emitter name
func (e *HTMLEmitter) Name() string {
	return "html"
}
