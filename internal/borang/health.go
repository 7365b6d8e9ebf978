package borang

import "github.com/sksa/borang/internal/models"

// Table geometry for the health declaration.
const (
	col1W = 50.0
	col2W = 120.0
	subW  = 40.0
	rowH  = 7.5
	rowW  = col1W + col2W
)

// checklist rows; an empty second slot gives one full-width prompt.
var checklist = [][2]string{
	{"Pernah Pening atau sakit kepala yang teruk", "Pernah dilakukan pembedahan pada tubuh"},
	{"Pernah bermasalah pernafasan atau asma", "Pernah mempunyai sakit sawan (epilepsy)"},
	{"Alahan pada bisa, ubatan or air laut", "Pernah alami Diabetes atau tekanan darah tinggi"},
	{"Pernah alami kecederaan pada tulang", "Pernah mabuk laut atau pergerakan"},
	{"Pernah alami sakit jantung", "Pernah alami masalah buah pinggang"},
	{"Pernahkah anda dalam tempoh satu bulan yang lalu mengalami sebarang penyakit berjangkit atau cirit-birit?", ""},
}

var (
	bloodGroups = []struct {
		dx    float64
		label string
	}{{30, "A"}, {40, "B"}, {52, "AB"}, {65, "O"}}
	rhesus = []struct {
		dx    float64
		label string
	}{{130, "RH+"}, {145, "RH-"}}
)

func checkbox(s surface, x, y float64, label string) {
	s.Rect(x, y-3.5, 3.5, 3.5)
	s.Text(x+5, y-0.5, label)
}

// labelValue draws one label cell plus one value cell and returns the next y.
func labelValue(s surface, y float64, label, value string) float64 {
	const m = pageMargin
	s.Rect(m, y, col1W, rowH)
	s.Rect(m+col1W, y, col2W, rowH)
	s.SetFont("B", 8.5)
	s.Text(m+2, y+5, label)
	s.SetFont("", 8.5)
	s.Text(m+col1W+2, y+5, orDots(value, Placeholder))
	return y + rowH
}

// healthPage draws the student health declaration. Medical answers and
// blood group are left blank for the parent.
func healthPage(s surface, st models.Student, p models.ProgramInfo) {
	const m = pageMargin

	s.AddPage()
	drawLogo(s)

	s.SetFont("B", 9)
	s.TextCentered(pageCenterX, 43, "BORANG PERAKUAN KESIHATAN MURID SEBELUM MENYERTAI")
	s.TextCentered(pageCenterX, 47, "AKTIVITI KOKURIKULUM PERINGKAT KEBANGSAAN")

	y := 52.0
	y = labelValue(s, y, "NAMA AKTIVITI", upper(p.Name))
	y = labelValue(s, y, "TEMPAT AKTIVITI", upper(p.Place))
	y = labelValue(s, y, "PERINGKAT AKTIVITI", upper(p.Level.Label()))

	// start | value | end label | value
	s.Rect(m, y, col1W, rowH)
	s.Rect(m+col1W, y, subW, rowH)
	s.Rect(m+col1W+subW, y, subW, rowH)
	s.Rect(m+col1W+2*subW, y, subW, rowH)
	s.SetFont("B", 8.5)
	s.Text(m+2, y+5, "TARIKH MULA")
	s.SetFont("", 8.5)
	s.Text(m+col1W+2, y+5, FormatDate(p.DateStart))
	s.SetFont("B", 8.5)
	s.Text(m+col1W+subW+2, y+5, "TARIKH AKHIR")
	s.SetFont("", 8.5)
	s.Text(m+col1W+2*subW+2, y+5, FormatDate(p.DateEnd))
	y += rowH

	y = labelValue(s, y, "NAMA PENUH MURID", upper(st.Name))
	y = labelValue(s, y, "NO. K.P/SIJIL LAHIR", st.IC)

	// gender | value | insurance (double height)
	s.Rect(m, y, col1W, rowH*2)
	s.Rect(m+col1W, y, subW, rowH*2)
	s.Rect(m+col1W+subW, y, col2W-subW, rowH*2)
	s.SetFont("B", 8.5)
	s.Text(m+2, y+8, "JANTINA")
	s.SetFont("", 8.5)
	s.Text(m+col1W+2, y+8, orDots(st.Gender.Label(), Placeholder))
	s.SetFont("B", 8.5)
	s.Text(m+col1W+subW+2, y+6, "NO. INSURANS TAKAFUL")
	s.SetFont("B", 7)
	s.Text(m+col1W+subW+2, y+10, "(Dapatkan dari pihak sekolah)")
	y += rowH * 2

	// phones
	s.Rect(m, y, col1W, rowH*1.5)
	s.Rect(m+col1W, y, subW, rowH*1.5)
	s.Rect(m+col1W+subW, y, col2W-subW, rowH*1.5)
	s.SetFont("B", 8.5)
	s.Text(m+2, y+6, "NO. TELEFON RUMAH")
	s.Text(m+col1W+subW+2, y+6, "NO. TELEFON TANGAN")
	s.Text(m+col1W+subW+2, y+10, "PENJAGA")
	y += rowH * 1.5

	y += 6
	s.Text(m, y, "REKOD PERUBATAN:")
	y += 4
	s.Rect(m, y, 130, 7)
	s.Rect(m+130, y, 20, 7)
	s.Rect(m+150, y, 20, 7)
	s.SetFont("", 8.5)
	s.Text(m+2, y+4.5, "Pernahkah anda menerima imunisasi terhadap Tetanus? (Tandakan)")
	s.Text(m+132, y+4.5, "Ya")
	s.Text(m+152, y+4.5, "Tidak")
	y += 7
	s.Rect(m, y, 130, 7)
	s.Rect(m+130, y, 40, 7)
	s.Text(m+2, y+4.5, "Jika pernah, sila nyatakan tarikh terakhir anda menerima imunisasi.")
	y += 10

	s.SetFont("B", 8.5)
	s.Text(m, y, "SILA TANDAKAN / JIKA ”YA” DAN X JIKA ”TIDAK” DI PETAK YANG BERKENAAN:")
	y += 5

	s.SetFont("", 7.5)
	for _, row := range checklist {
		full := row[1] == ""
		w := 80.0
		if full {
			w = 160
		}
		s.Rect(m, y, w, 7)
		s.Rect(m+w, y, 10, 7)
		s.Text(m+2, y+4.5, row[0])
		if !full {
			s.Rect(m+90, y, 70, 7)
			s.Rect(m+160, y, 10, 7)
			s.Text(m+92, y+4.5, row[1])
		}
		y += 7
	}

	// blood group and rhesus are ticked by hand
	s.Rect(m, y, 110, 8)
	s.Rect(m+110, y, 60, 8)
	s.SetFont("", 8.5)
	s.Text(m+2, y+5, "Kumpulan Darah")
	for _, b := range bloodGroups {
		checkbox(s, m+b.dx, y+5, b.label)
	}
	s.Text(m+112, y+5, "Rhesus")
	for _, r := range rhesus {
		checkbox(s, m+r.dx, y+5, r.label)
	}
	y += 12

	s.SetFont("B", 8.5)
	s.Text(m, y, "SILA BERIKAN MAKLUMAT TERPERINCI JIKA MASALAH KESIHATAN DI ATAS BERKAITAN DENGAN ANDA.")
	y += 4
	s.Rect(m, y, rowW, 12)
	y += 18

	s.SetFont("B", 8)
	s.Text(m, y, "SEKIRANYA PELAJAR MEMPUNYAI SALAH SATU DARIPADA PENYAKIT DI ATAS, PELAJAR ADALAH DILARANG")
	y += 4
	s.Text(m, y, "MENYERTAI PERTANDINGAN DI ATAS.")

	y += 10
	s.SetFont("B", 9)
	s.Text(m, y, "Tanda Tangan Peserta & Nama:")
	s.Text(80, y, "Disahkan oleh Pengetua :")
	s.Text(150, y, "Tarikh :")

	y += 10
	s.Text(m, y, dots(57))
	s.Text(80, y, dots(60))
	s.Text(150, y, dots(28))
	y += 5
	s.Text(m, y, "( "+orDots(upper(st.Name), dots(30))+" )")
	s.Text(80, y, "(                                             )")
}
