package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"luxhaven/internal/storage"
	"luxhaven/internal/validate"
)

// BrochureMaxBytes caps brochure PDFs at 5MB.
const BrochureMaxBytes = 5 << 20

// UploadService compresses images server-side before they reach object
// storage and fans independent files out concurrently.
type UploadService struct {
	Store storage.Store

	// MaxDimension bounds the longer image side; SizeCeiling bounds the
	// encoded output. Zero values pick the defaults.
	MaxDimension int
	SizeCeiling  int
}

func NewUploadService(store storage.Store) *UploadService {
	return &UploadService{Store: store, MaxDimension: 1920, SizeCeiling: 800 << 10}
}

// ImageFile is one selected file: original filename plus raw bytes.
type ImageFile struct {
	Name string
	Data []byte
}

// UploadResult aggregates a batch. URLs holds the successful uploads in
// their original selection order; failures are dropped in place.
type UploadResult struct {
	URLs     []string
	Uploaded int
	Failed   int
}

// Message is the aggregate toast text for the batch.
func (r UploadResult) Message() string {
	return fmt.Sprintf("Successfully uploaded %d images", r.Uploaded)
}

// UploadImages compresses and stores each file under slug-derived paths.
// Files run concurrently and are joined before the result is assembled; a
// per-file failure never blocks the rest of the batch.
func (s *UploadService) UploadImages(bucket, slug string, files []ImageFile) UploadResult {
	urls := make([]string, len(files))
	ok := make([]bool, len(files))

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f ImageFile) {
			defer wg.Done()
			compressed, err := s.compress(f.Data)
			if err != nil {
				return
			}
			path := fmt.Sprintf("%s/%d-%s.jpg", slug, i, slugBase(f.Name))
			url, err := s.Store.Upload(bucket, path, bytes.NewReader(compressed))
			if err != nil {
				return
			}
			urls[i] = url
			ok[i] = true
		}(i, f)
	}
	wg.Wait()

	var res UploadResult
	for i := range files {
		if ok[i] {
			res.URLs = append(res.URLs, urls[i])
			res.Uploaded++
		} else {
			res.Failed++
		}
	}
	return res
}

// UploadBrochure stores a single PDF and returns its public URL. Size and
// content-type checks happen at the handler boundary.
func (s *UploadService) UploadBrochure(slug string, data []byte) (string, error) {
	return s.Store.Upload(storage.BucketBrochures, slug+".pdf", bytes.NewReader(data))
}

// compress decodes, fits the image inside MaxDimension and re-encodes as
// JPEG, stepping the quality down until the output is under the ceiling.
func (s *UploadService) compress(data []byte) ([]byte, error) {
	maxDim := s.MaxDimension
	if maxDim <= 0 {
		maxDim = 1920
	}
	ceiling := s.SizeCeiling
	if ceiling <= 0 {
		ceiling = 800 << 10
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() > maxDim || b.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var out []byte
	for _, quality := range []int{85, 75, 65, 50} {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, err
		}
		out = buf.Bytes()
		if len(out) <= ceiling {
			break
		}
	}
	return out, nil
}

func slugBase(name string) string {
	if ext := filepath.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	if s := validate.Slugify(name); s != "" {
		return s
	}
	return "image"
}
