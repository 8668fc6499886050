package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/repository"
)

// programFields is the column count of the program catalogue export.
const programFields = 20

// ProgramImporter loads the program catalogue from its ";"-separated
// export. Fields are not quoted in that file, so a plain split is the
// format.
type ProgramImporter struct {
	ProgramRepo repository.ProgramRepositoryInterface
	Log         *zap.Logger
}

type ImportResult struct {
	Imported int
	Skipped  int
	// AlreadyLoaded is set when the table had rows and nothing was read.
	AlreadyLoaded bool
}

// Import reads r only when the programs table is empty. The first line is
// a header. Blank lines are ignored and lines with fewer than twenty
// fields are skipped; empty fields are stored as NULL.
func (imp *ProgramImporter) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	var res ImportResult
	log := imp.Log
	if log == nil {
		log = zap.NewNop()
	}

	n, err := imp.ProgramRepo.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("count programs: %w", err)
	}
	if n > 0 {
		log.Info("programs table already has data, skipping import", zap.Int("programs", n))
		res.AlreadyLoaded = true
		return res, nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	header := true
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if header {
			header = false
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, ";")
		if len(fields) < programFields {
			log.Warn("skipping program line with missing fields",
				zap.Int("line", line),
				zap.Int("fields", len(fields)),
			)
			res.Skipped++
			continue
		}

		p := programFromFields(fields)
		if err := imp.ProgramRepo.Create(ctx, p); err != nil {
			log.Error("import program line", zap.Int("line", line), zap.Error(err))
			res.Skipped++
			continue
		}
		res.Imported++
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read programs file: %w", err)
	}

	log.Info("programs imported", zap.Int("imported", res.Imported), zap.Int("skipped", res.Skipped))
	return res, nil
}

// ImportFile imports the file at path. A missing file is not an error: the
// catalogue is optional and ok reports whether the file was found.
func (imp *ProgramImporter) ImportFile(ctx context.Context, path string) (res ImportResult, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if imp.Log != nil {
				imp.Log.Info("programs file not found, skipping import", zap.String("path", path))
			}
			return res, false, nil
		}
		return res, false, fmt.Errorf("open programs file: %w", err)
	}
	defer f.Close()

	res, err = imp.Import(ctx, f)
	return res, true, err
}

func programFromFields(f []string) *model.Program {
	v := func(i int) *string {
		s := strings.TrimSpace(f[i])
		if s == "" {
			return nil
		}
		return &s
	}
	return &model.Program{
		NombrePrograma:       v(0),
		NomenclaturaPrograma: v(1),
		LineaNegocio:         v(2),
		Modalidad:            v(3),
		Facultad:             v(4),
		NomenclaturaFacultad: v(5),
		CodigoBanner:         v(6),
		ListaPardot:          v(7),
		Periodo:              v(8),
		CodigoCarrera:        v(9),
		NombrePrograma2:      v(10),
		LinkPrograma:         v(11),
		PP1:                  v(12),
		PP1D:                 v(13),
		PP2:                  v(14),
		PP2D:                 v(15),
		PP3:                  v(16),
		PP3D:                 v(17),
		PP4:                  v(18),
		PP4D:                 v(19),
	}
}
