package form

import (
	"context"
	"fmt"
	"log"

	"github.com/sksa/borang/internal/borang"
	"github.com/sksa/borang/internal/models"
)

// Renderer produces one student's document; *borang.Renderer satisfies it.
type Renderer interface {
	Render(ctx context.Context, st models.Student, p models.ProgramInfo) (borang.Document, error)
}

// Saver receives each finished document.
type Saver interface {
	Save(ctx context.Context, doc borang.Document) error
}

// Report describes one GenerateAll run. Saved holds the filenames delivered
// before Err (if any) stopped the batch.
type Report struct {
	Saved []string
	Err   error
}

// GenerateAll renders and saves a document for every named student, one at a
// time in list order. The first failure is logged and ends the batch;
// documents saved before it are kept. A call made while another is running
// returns ErrBusy without rendering anything.
func (f *Form) GenerateAll(ctx context.Context, r Renderer, s Saver) Report {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return Report{Err: ErrBusy}
	}
	f.busy = true
	queue := f.submissionsLocked()
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.busy = false
		f.mu.Unlock()
	}()

	var rep Report
	for _, sub := range queue {
		doc, err := r.Render(ctx, sub.Student, sub.Program)
		if err == nil {
			if serr := s.Save(ctx, doc); serr != nil {
				err = fmt.Errorf("save %s: %w", doc.Filename, serr)
			}
		}
		if err != nil {
			log.Printf("generate: stopped after %d of %d documents: %v", len(rep.Saved), len(queue), err)
			rep.Err = err
			return rep
		}
		rep.Saved = append(rep.Saved, doc.Filename)
	}
	return rep
}

// Submissions pairs every named student, in list order, with a snapshot of
// the program. It is the work list GenerateAll walks.
func (f *Form) Submissions() []models.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submissionsLocked()
}

func (f *Form) submissionsLocked() []models.Submission {
	out := make([]models.Submission, 0, len(f.students))
	for _, st := range f.students {
		if st.Named() {
			out = append(out, models.Submission{Student: st, Program: f.program})
		}
	}
	return out
}
