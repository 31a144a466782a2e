package cli

const statsTemplate = `
=== Sync Queue Statistics ===

Client: {{.ClientID}}
Total:  {{.Total}}
{{- if .ByStatus }}

By status:
{{- range $status, $count := .ByStatus }}
  {{ printf "%-10s" $status }} {{ $count }}
{{- end }}
{{- end }}
{{- if .PendingByType }}

Pending by entity type:
{{- range $type, $count := .PendingByType }}
  {{ printf "%-10s" $type }} {{ $count }}
{{- end }}
{{- end }}
{{- if .OldestPending }}

Oldest pending change: {{ .OldestPending.Format "2006-01-02T15:04:05Z07:00" }}
{{- end }}
`

const healthTemplate = `
=== Sync Health ===

Organization:   {{.OrganizationID}}
Health score:   {{.HealthScore}}/100
Active clients: {{.ActiveClients}}
Sync backlog:   {{.SyncBacklog}} pending item(s)
Failure rate:   {{printf "%.1f" .FailureRatePercent}}%
{{- if .Recommendations }}

Recommendations:
{{- range .Recommendations }}
  - {{ . }}
{{- end }}
{{- end }}
`

const manifestTemplate = `
=== Archive Created ===

Manifest items: {{.Items}}
Data key:       {{.DataKey}}
Checksum:       {{.Checksum}}
Size:           {{.Size}} bytes ({{.RawSize}} uncompressed)
Cutoff:         {{ .Cutoff.Format "2006-01-02T15:04:05Z07:00" }}
`
