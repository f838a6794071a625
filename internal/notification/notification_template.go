package notification

import (
	"bytes"
	"html/template"

	"siap-cuti/internal/domain"
)

var leaveStatusTemplate = template.Must(template.New("leave_status").Parse(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h2 style="color: #D32F2F;">Pembaruan Status Pengajuan Cuti</h2>
    <p>Yth. {{.Name}},</p>
    <p>{{.Intro}}</p>
    <hr style="border: none; border-top: 1px solid #eee;">
    <p style="margin-bottom: 5px;"><strong>Judul Pengajuan:</strong> {{.RequestTitle}}</p>
    <p style="margin-bottom: 5px;"><strong>Tanggal:</strong> {{.StartDate}} - {{.EndDate}}</p>
    <p style="margin-bottom: 5px;"><strong>Status Saat Ini:</strong> <strong style="color: {{.StatusColor}};">{{.Status}}</strong></p>
    <hr style="border: none; border-top: 1px solid #eee;">
    <p>Anda dapat melihat detail lebih lanjut dengan login ke aplikasi SIAP CUTI.</p>
    <p>Terima kasih atas perhatiannya.</p>
    <br>
    <p style="font-size: 0.8em; color: #777;"><em>Ini adalah email otomatis, mohon untuk tidak membalas.</em></p>
</div>
`))

type leaveStatusView struct {
	Name         string
	Intro        string
	RequestTitle string
	StartDate    string
	EndDate      string
	Status       string
	StatusColor  template.CSS
}

func leaveStatusSubject(status, title string) string {
	if status == domain.LeaveStatusApproved {
		return `Selamat! Pengajuan Cuti Anda Disetujui: "` + title + `"`
	}
	return `Informasi Pengajuan Cuti Ditolak: "` + title + `"`
}

func renderLeaveStatus(e LeaveStatusEmail) (string, error) {
	view := leaveStatusView{
		Name:         e.Name,
		Intro:        "Dengan berat hati kami memberitahukan bahwa pengajuan cuti Anda belum dapat disetujui oleh admin.",
		RequestTitle: e.RequestTitle,
		StartDate:    FormatIndonesianDate(e.StartDate),
		EndDate:      FormatIndonesianDate(e.EndDate),
		Status:       e.Status,
		StatusColor:  "#dc3545",
	}
	if e.Status == domain.LeaveStatusApproved {
		view.Intro = "Kami dengan gembira memberitahukan bahwa pengajuan cuti Anda telah disetujui oleh admin."
		view.StatusColor = "#28a745"
	}

	var buf bytes.Buffer
	if err := leaveStatusTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
