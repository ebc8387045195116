// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{if .Title}}{{.Title}}{{else}}Resampling Report{{end}}</title>
<style>
.resample { border-collapse: collapse; }
.resample th { text-align: left; border-bottom: 1px solid #666; }
.resample td:nth-child(1n+3) { text-align: right; padding: 0em 1em; }
.resample .significant td { font-weight: bold; }
.warning { color: #c00; }
</style>
</head>
<body>
<table class='resample'>
<tr><th>data<th>method<th>statistic<th>interval<th>p<th>parametric p<th>n<th>note
{{range .Rows -}}
<tr><td>{{.Label}}<td>{{.Method}}<td>{{.StatisticText}}<td>{{.IntervalText}}<td>{{.PText}}<td>{{.ParametricPText}}<td>{{.N}}<td>{{.Note}}
{{end -}}
</table>
{{range .Rows}}{{$label := .Label}}{{range .Warnings -}}
<p class='warning'>{{$label}}: {{.}}</p>
{{end}}{{end -}}
</body>
</html>
`))

// WriteHTML writes rep as a standalone HTML page.
func (rep *Report) WriteHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, rep)
}
