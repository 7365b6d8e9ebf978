package borang

import (
	"github.com/sksa/borang/internal/config"
	"github.com/sksa/borang/internal/models"
)

const (
	pageMargin  = 20.0
	pageCenterX = 105.0

	logoW = 45.0
	logoH = 25.0
	logoY = 10.0
)

const consentParagraph = "2. Saya difahamkan bahawa soal keselamatan dan disiplin sentiasa diberi perhatian sewajarnya oleh Guru/Pegawai/Urus Setia yang telah diamanahkan. Sekiranya kesihatan anak/jagaan saya terganggu dalam masa latihan/perkhemahan atau perjalanan/semasa program, maka saya dengan sepenuh hati membenarkan Guru/Pegawai/Urus Setia menguruskan bagi pihak saya untuk mendapatkan rawatan perubatan. Saya juga mengaku bahawa anak saya telah mempunyai skim perlindungan insurans bagi dirinya sendiri."

func drawLogo(s surface) {
	s.Image((210-logoW)/2, logoY, logoW, logoH)
}

// consentPage draws the parental consent letter. Parent fields are always
// dotted lines; they are completed by hand.
func consentPage(s surface, inst config.Institution, st models.Student, p models.ProgramInfo) {
	const m = pageMargin

	s.AddPage()
	drawLogo(s)

	s.SetFont("B", 10)
	s.TextCentered(pageCenterX, 42, "SURAT AKUAN KEBENARAN IBU BAPA/PENJAGA MENYERTAI")
	s.TextCentered(pageCenterX, 47, "AKTIVITI KOKURIKULUM")

	s.SetFont("", 10)
	y := 55.0
	field := func(label, value string, labelX, valueX float64) {
		s.Text(labelX, y, label)
		s.Text(valueX, y, ": "+value)
	}

	// parent / guardian
	field("Saya", lineFull, m, m+35)
	y += 6
	field("No. Kad Pengenalan", lineFull, m, m+35)
	y += 6
	field("Beralamat", lineFull, m, m+35)
	y += 5
	s.Text(m+37, y, lineFull)
	y += 8
	field("No. Telefon", lineHalf, m, m+35)

	y += 8
	s.Text(m, y, "mengaku adalah waris kepada murid bernama di bawah :")

	// student
	y += 7
	field("Nama Pelajar", orDots(upper(st.Name), studentFill), m+10, m+50)
	y += 5.5
	field("Tahun", orDots(upper(st.Class), studentFill), m+10, m+50)
	y += 5.5
	field("No. KP /Surat Lahir", orDots(st.IC, studentFill), m+10, m+50)
	y += 5.5
	field("Sekolah", orDots(inst.SchoolLine(), studentFill), m+10, m+50)

	y += 10
	s.Text(m, y, "Saya dengan ini memberi kebenaran bertulis saya kepada anak / jagaan saya untuk menyertai :")

	// program
	y += 10
	s.Text(m+10, y, "Nama Program")
	s.SetFont("B", 10)
	s.TextWrapped(m+45, y, 125, ": "+orDots(upper(p.Name), programFill))
	s.SetFont("", 10)

	y += 10
	field("Tarikh", DateRange(p.DateStart, p.DateEnd), m+10, m+45)
	y += 5.5
	field("Tempat", orDots(upper(p.Place), programFill), m+10, m+45)
	y += 8
	field("Anjuran", orDots(upper(p.Organizer), programFill), m+10, m+45)
	y += 5.5
	field("Kelolaan", orDots(upper(p.ManagedBy), programFill), m+10, m+45)

	y += 10
	s.SetFont("", 9)
	s.Paragraph(m, y, 170, consentParagraph)

	y += 22
	s.SetFont("", 10)
	s.Text(m, y, "3. Saya dengan ini mengakui bahawa anak/jagaan saya ADA/TIDAK ADA* mengidap penyakit")
	y += 5
	s.Text(m, y, "kronik/berjangkit. Nyatakan (Jika ada) :")
	y += 6.5
	s.Text(m, y, lineNote)
	y += 3.5
	s.SetFont("", 8)
	s.Text(m, y, "(*Potong yang berkenaan)")

	// parent signature
	y += 7.5
	s.SetFont("", 10)
	field("Tandatangan Ibu bapa/Penjaga", signFill, m, m+55)
	y += 5.5
	field("Nama", signFill, m, m+55)
	y += 5.5
	field("Tarikh", signFill, m, m+55)

	// headteacher
	y += 9
	s.SetFont("B", 10)
	s.Text(m, y, "DISAHKAN OLEH GURU BESAR")
	s.SetFont("", 10)
	y += 5
	s.Text(m, y, "Saya dengan ini mengakui bahawa sepanjang pengetahuan saya, segala keterangan di atas adalah benar.")

	y += 7.5
	field("Tandatangan", signFill, m, m+35)
	y += 5.5
	field("Nama", orDots(upper(inst.HeadteacherName), signFill), m, m+35)
	y += 5.5
	field("No. Kad Pengenalan", orDots(inst.HeadteacherIC, signFill), m, m+35)
	y += 5.5
	field("Tarikh", signFill, m, m+35)
	y += 5.5
	field("Cop Rasmi", signFill, m, m+35)
}
