package slotdata

import (
	"github.com/schollz/progressbar/v3"
	"github.com/sourcegraph/conc/pool"
)

// LoadAll decodes every file on a bounded pool of workers, returning the
// records in the same order as files. Decoding is the embarrassingly parallel
// half of a pass; callers fold the results sequentially.
func LoadAll[T any](description string, files []File, workers int, decode func(path string) (*T, error)) ([]*T, error) {
	if workers < 1 {
		workers = 1
	}
	bar := progressbar.New(len(files))
	bar.Describe(description)
	defer bar.Clear()

	records := make([]*T, len(files))
	decoders := pool.New().WithErrors().WithMaxGoroutines(workers)
	for i, file := range files {
		i, file := i, file
		decoders.Go(func() error {
			record, err := decode(file.Path)
			if err != nil {
				return err
			}
			records[i] = record
			bar.Add(1)
			return nil
		})
	}
	if err := decoders.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
