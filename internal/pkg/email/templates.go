package email

// ReportTemplate renders a user-abuse report for the support team
const ReportTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2 style="color: #c0392b;">User Reported for Inappropriate Behavior</h2>
	<p>Reporting user: <strong>{{.ReporterUserID}}</strong></p>
	<p>Reported user: <strong>{{.ReportedUserID}}</strong></p>
	<p>Filed at: {{.CreatedAt}}</p>
	<blockquote style="border-left: 4px solid #c0392b; margin: 16px 0; padding: 8px 16px; background: #fdf2f0;">
		{{.Message}}
	</blockquote>
	<p style="color: #888; font-size: 12px;">The reported user has been blocked by the reporter.</p>
</div>
`
