package leave

import (
	"time"

	leaveerrors "github.com/manjuv2220-pixel/SSL-Leave-Management/internal/leave/errors"
)

const (
	TypeAnnual    = "ANNUAL"
	TypeSick      = "SICK"
	TypeCasual    = "CASUAL"
	TypeEmergency = "EMERGENCY"
)

// Types dalam urutan tampilan saldo.
var Types = []string{TypeAnnual, TypeSick, TypeCasual, TypeEmergency}

// Policy adalah jatah cuti tahunan per kategori. Immutable setelah dibuat;
// di-set sekali dari konfigurasi saat proses start.
type Policy struct {
	allotments map[string]int
}

func NewPolicy(annual, sick, casual, emergency int) Policy {
	return Policy{allotments: map[string]int{
		TypeAnnual:    annual,
		TypeSick:      sick,
		TypeCasual:    casual,
		TypeEmergency: emergency,
	}}
}

func (p Policy) Allotment(leaveType string) (int, bool) {
	n, ok := p.allotments[leaveType]
	return n, ok
}

// BalanceTracked menentukan kategori yang saldonya ditegakkan saat pengajuan.
// Hanya ANNUAL dan SICK; kategori lain dicatat tapi tidak dibatasi.
func BalanceTracked(leaveType string) bool {
	return leaveType == TypeAnnual || leaveType == TypeSick
}

// BusinessDays menghitung jumlah hari kerja (Senin-Jumat) dalam rentang
// [start, end] inklusif.
func BusinessDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, leaveerrors.ErrInvalidDateRange
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days, nil
}
