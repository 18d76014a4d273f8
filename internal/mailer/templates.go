package mailer

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Email bodies share a header/footer layout and render with html/template so
// homeowner-supplied text (names, captions, instructions) is escaped.

const layoutHeader = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #f9f7f4;">
<div style="background: #383D31; padding: 30px; text-align: center;">
<h1 style="color: #f9f7f4; margin: 0; font-size: 28px;">Listing Lift</h1>
<p style="color: #d4d1c8; margin: 10px 0 0 0;">by Retreat Vacation Rentals</p>
</div>
<div style="padding: 40px 30px;">`

var layoutFooter = fmt.Sprintf(`<p style="color: #888; font-size: 14px; margin-top: 30px;">Questions? Reply to this email or contact us at dan@retreatvr.ca</p>
</div>
<div style="background: #383D31; padding: 20px; text-align: center;">
<p style="color: #d4d1c8; margin: 0; font-size: 12px;">&copy; %d Retreat Vacation Rentals</p>
</div></div>`, time.Now().Year())

var (
	confirmationTmpl = mustTemplate("confirmation", `<h2 style="color: #383D31; margin-top: 0;">Thank You, {{.Name}}!</h2>
<p style="color: #555; line-height: 1.6;">Your photo submission has been received. We'll enhance your photos and get back to you soon.</p>
<div style="background: white; border-radius: 8px; padding: 20px; margin: 25px 0; border-left: 4px solid #383D31;">
<p style="margin: 8px 0;"><strong>Submission ID:</strong> {{.SubmissionNumber}}</p>
<p style="margin: 8px 0;"><strong>Property:</strong> {{.PropertyAddress}}</p>
<p style="margin: 8px 0;"><strong>Photos Submitted:</strong> {{.PhotoCount}}</p>
</div>
<p style="color: #555; line-height: 1.6;">We'll review your photos and apply our AI enhancements. You'll receive another email once your photos are ready for review.</p>`)

	adminAlertTmpl = mustTemplate("adminAlert", `<h2 style="color: #383D31; margin-top: 0;">New Photo Submission #{{.SubmissionNumber}}</h2>
<div style="background: white; border-radius: 8px; padding: 20px;">
<p><strong>Homeowner:</strong> {{.HomeownerName}}</p>
<p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
<p><strong>Property:</strong> {{.PropertyAddress}}</p>
<p><strong>Photos:</strong> {{.PhotoCount}}</p>
</div>
<div style="text-align: center; margin-top: 20px;">
<a href="{{.DashboardURL}}" style="background: #383D31; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; display: inline-block;">View in Dashboard</a>
</div>`)

	autoEnhanceCompleteTmpl = mustTemplate("autoEnhanceComplete", `<h2 style="color: #383D31; margin-top: 0;">First Round Ready for Review</h2>
<div style="background: white; border-radius: 8px; padding: 20px; margin: 20px 0; border-left: 4px solid {{.StatusColor}};">
<p style="margin: 0 0 8px 0; font-size: 16px; font-weight: bold; color: {{.StatusColor}};">{{.StatusText}}</p>
<p style="margin: 8px 0;"><strong>Submission:</strong> #{{.SubmissionNumber}}</p>
<p style="margin: 8px 0;"><strong>Homeowner:</strong> {{.HomeownerName}}</p>
<p style="margin: 8px 0;"><strong>Property:</strong> {{.PropertyAddress}}</p>
</div>
{{if gt .ErrorCount 0}}<div style="background: #fef3c7; border-radius: 8px; padding: 15px; margin: 20px 0; border-left: 4px solid #f59e0b;">
<p style="margin: 0; color: #92400e;"><strong>{{.ErrorCount}} photo(s) failed to enhance.</strong> These can be manually enhanced from the dashboard.</p>
</div>{{end}}
<p style="color: #555; line-height: 1.6;">Review the enhancements in the dashboard. You can re-run any photo with different settings, apply presets, or edit the prompt for more control.</p>
<div style="text-align: center; margin: 30px 0;">
<a href="{{.DashboardURL}}" style="background: #383D31; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; display: inline-block;">Review Enhancements</a>
</div>`)

	retakesRequiredTmpl = mustTemplate("retakesRequired", `<h2 style="color: #383D31; margin-top: 0;">Almost There{{if gt .Round 1}} (Round {{.Round}}){{end}}!</h2>
<p style="color: #555; line-height: 1.6; font-size: 16px;">Hi {{.Name}},</p>
<p style="color: #555; line-height: 1.6; font-size: 16px;"><strong>{{.ApprovedCount}} photos look fantastic!</strong> We just need {{len .RetakePhotos}} new shot{{if gt (len .RetakePhotos) 1}}s{{end}} to complete your listing at {{.PropertyAddress}}.</p>
<h3 style="color: #f59e0b; font-size: 16px; margin-top: 25px;">Photos To Retake</h3>
{{range .RetakePhotos}}<div style="background: white; border-radius: 8px; padding: 15px; margin: 10px 0; border-left: 4px solid #f59e0b;">
<p style="margin: 0 0 5px 0; font-weight: bold; color: #383D31;">{{.Room}}: {{.Caption}}</p>
{{if .Instructions}}<p style="margin: 0; color: #555; font-size: 14px;">{{.Instructions}}</p>{{end}}
</div>{{end}}
<div style="text-align: center; margin: 30px 0;">
<a href="{{.MagicLink}}" style="background: #383D31; color: white; padding: 18px 50px; text-decoration: none; border-radius: 8px; display: inline-block; font-size: 18px; font-weight: bold;">Upload Replacement Photos</a>
</div>
<p style="color: #888; font-size: 14px; text-align: center;">You can upload photos at different times. Your link works for 30 days.</p>
{{if .RejectedPhotos}}<div style="margin-top: 30px;">
<h3 style="color: #ef4444; font-size: 16px;">Photos We Won't Be Using</h3>
<p style="color: #555; font-size: 14px;">These photos have been excluded from your listing:</p>
{{range .RejectedPhotos}}<div style="background: #fef2f2; border-radius: 8px; padding: 12px; margin: 8px 0;">
<p style="margin: 0; font-weight: bold; color: #383D31; font-size: 14px;">{{.Room}}: {{.Caption}}</p>
{{if .Reason}}<p style="margin: 5px 0 0 0; color: #777; font-size: 13px;">{{.Reason}}</p>{{end}}
</div>{{end}}
</div>{{end}}`)

	photosReadyTmpl = mustTemplate("photosReady", `<h2 style="color: #22c55e; margin-top: 0;">Your Photos Are Ready!</h2>
<p style="color: #555; line-height: 1.6; font-size: 16px;">Hi {{.Name}},</p>
<p style="color: #555; line-height: 1.6; font-size: 16px;">Great news! Your <strong>{{.ApprovedCount}} enhanced photos</strong> for {{.PropertyAddress}} are ready to view and download.</p>
{{if gt .HeroCount 0}}<div style="background: #fffbeb; border-radius: 8px; padding: 15px; margin: 20px 0; border-left: 4px solid #f59e0b;">
<p style="margin: 0; color: #92400e; font-size: 14px;"><strong>{{.HeroCount}} cover photo{{if gt .HeroCount 1}}s{{end}}</strong> optimized for Airbnb (4000&times;2667 pixels)</p>
</div>{{end}}
<div style="background: white; border-radius: 8px; padding: 20px; margin: 25px 0; text-align: center;">
<p style="margin: 0 0 8px 0; color: #383D31; font-weight: bold;">Submission #{{.SubmissionNumber}}</p>
<p style="margin: 0; color: #555;">{{.PropertyAddress}}</p>
<p style="margin: 8px 0 0 0; color: #555;">{{.ApprovedCount}} enhanced photos</p>
</div>
<div style="text-align: center; margin: 30px 0;">
<a href="{{.DeliveryLink}}" style="background: #383D31; color: white; padding: 18px 50px; text-decoration: none; border-radius: 8px; display: inline-block; font-size: 18px; font-weight: bold;">View &amp; Download Your Photos</a>
</div>
<p style="color: #555; text-align: center; font-size: 14px;">Or <a href="{{.DownloadLink}}" style="color: #383D31; font-weight: bold;">download all as a ZIP file</a></p>
<p style="color: #888; font-size: 14px; text-align: center; margin-top: 25px;">Your photos will be available for 30 days.</p>`)

	retakesReceivedTmpl = mustTemplate("retakesReceived", `{{if .AllDone}}<h2 style="color: #383D31; margin-top: 0;">All Retakes Received</h2>{{else}}<h2 style="color: #383D31; margin-top: 0;">{{.UploadedCount}} of {{.TotalRetakes}} Retakes Uploaded</h2>{{end}}
<div style="background: white; border-radius: 8px; padding: 20px; border-left: 4px solid {{if .AllDone}}#22c55e{{else}}#f59e0b{{end}};">
<p><strong>Submission:</strong> #{{.SubmissionNumber}}</p>
<p><strong>Homeowner:</strong> {{.HomeownerName}}</p>
<p><strong>Property:</strong> {{.PropertyAddress}}</p>
</div>
<div style="text-align: center; margin-top: 20px;">
<a href="{{.DashboardURL}}" style="background: #383D31; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; display: inline-block;">{{if .AllDone}}Review Retakes{{else}}View Dashboard{{end}}</a>
</div>`)

	clientFeedbackTmpl = mustTemplate("clientFeedback", `<h2 style="color: #383D31; margin-top: 0;">Client Feedback</h2>
<div style="background: white; border-radius: 8px; padding: 20px; border-left: 4px solid #f59e0b;">
<h3 style="color: #383D31; margin-top: 0;">Changes Requested</h3>
<p><strong>Submission:</strong> #{{.SubmissionNumber}}</p>
<p><strong>Homeowner:</strong> {{.HomeownerName}}</p>
{{if .Notes}}<p><strong>Notes:</strong> {{.Notes}}</p>{{end}}
</div>
<div style="text-align: center; margin-top: 20px;">
<a href="{{.DashboardURL}}" style="background: #383D31; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; display: inline-block;">View Submission</a>
</div>`)

	reuploadLinkTmpl = mustTemplate("reuploadLink", `<h2 style="color: #383D31; margin-top: 0;">Re-upload Your Photos</h2>
<p>Hi {{.Name}},</p>
<p>We've requested some photos to be re-uploaded for submission #{{.SubmissionNumber}}.</p>
{{if .Instructions}}<div style="background: white; padding: 15px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #f59e0b;"><strong>Instructions:</strong><p style="margin: 10px 0 0 0;">{{.Instructions}}</p></div>{{end}}
<div style="text-align: center; margin: 30px 0;">
<a href="{{.MagicLink}}" style="background: #383D31; color: white; padding: 15px 40px; text-decoration: none; border-radius: 6px; display: inline-block; font-size: 16px;">Re-upload Photos</a>
</div>
<p style="color: #888; font-size: 14px;">This link expires in 7 days.</p>`)
)

func mustTemplate(name, body string) *template.Template {
	return template.Must(template.New(name).Parse(body))
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var sb strings.Builder
	sb.WriteString(layoutHeader)
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render %s email: %w", tmpl.Name(), err)
	}
	sb.WriteString(layoutFooter)
	return sb.String(), nil
}

type ConfirmationData struct {
	Name             string
	SubmissionNumber string
	PropertyAddress  string
	PhotoCount       int
}

func ConfirmationEmail(d ConfirmationData) (string, error) {
	return render(confirmationTmpl, d)
}

type AdminAlertData struct {
	SubmissionNumber string
	HomeownerName    string
	Email            string
	PropertyAddress  string
	PhotoCount       int
	DashboardURL     string
}

func AdminAlertEmail(d AdminAlertData) (string, error) {
	return render(adminAlertTmpl, d)
}

type AutoEnhanceCompleteData struct {
	SubmissionNumber string
	HomeownerName    string
	PropertyAddress  string
	TotalPhotos      int
	SuccessCount     int
	ErrorCount       int
	DashboardURL     string

	StatusColor string
	StatusText  string
}

func AutoEnhanceCompleteEmail(d AutoEnhanceCompleteData) (string, error) {
	if d.ErrorCount == 0 {
		d.StatusColor = "#22c55e"
		d.StatusText = fmt.Sprintf("All %d photos enhanced successfully", d.SuccessCount)
	} else {
		d.StatusColor = "#f59e0b"
		d.StatusText = fmt.Sprintf("%d of %d photos enhanced (%d failed)", d.SuccessCount, d.TotalPhotos, d.ErrorCount)
	}
	return render(autoEnhanceCompleteTmpl, d)
}

// RetakePhotoItem is one line in the retakes-required email.
type RetakePhotoItem struct {
	Room         string
	Caption      string
	Instructions string
}

// RejectedPhotoItem is one line in the excluded-photos section.
type RejectedPhotoItem struct {
	Room    string
	Caption string
	Reason  string
}

type RetakesRequiredData struct {
	Name            string
	SubmissionNumber string
	PropertyAddress string
	ApprovedCount   int
	RetakePhotos    []RetakePhotoItem
	RejectedPhotos  []RejectedPhotoItem
	MagicLink       string
	Round           int
}

func RetakesRequiredEmail(d RetakesRequiredData) (string, error) {
	return render(retakesRequiredTmpl, d)
}

type PhotosReadyData struct {
	Name             string
	SubmissionNumber string
	PropertyAddress  string
	ApprovedCount    int
	HeroCount        int
	DeliveryLink     string
	DownloadLink     string
}

func PhotosReadyEmail(d PhotosReadyData) (string, error) {
	return render(photosReadyTmpl, d)
}

type RetakesReceivedData struct {
	SubmissionNumber string
	HomeownerName    string
	PropertyAddress  string
	UploadedCount    int
	TotalRetakes     int
	DashboardURL     string
	AllDone          bool
}

func RetakesReceivedEmail(d RetakesReceivedData) (string, error) {
	d.AllDone = d.UploadedCount >= d.TotalRetakes
	return render(retakesReceivedTmpl, d)
}

type ClientFeedbackData struct {
	SubmissionNumber string
	HomeownerName    string
	Notes            string
	DashboardURL     string
}

func ClientFeedbackEmail(d ClientFeedbackData) (string, error) {
	return render(clientFeedbackTmpl, d)
}

type ReuploadLinkData struct {
	Name             string
	SubmissionNumber string
	MagicLink        string
	Instructions     string
}

func ReuploadLinkEmail(d ReuploadLinkData) (string, error) {
	return render(reuploadLinkTmpl, d)
}
