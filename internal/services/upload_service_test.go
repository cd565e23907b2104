package services_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"sync"
	"testing"

	"luxhaven/internal/services"
	"luxhaven/internal/storage"
)

// memStore collects uploads in memory; Upload is called from multiple
// goroutines during a batch.
type memStore struct {
	mu    sync.Mutex
	paths []string
}

func (s *memStore) Upload(bucket, path string, r io.Reader) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = append(s.paths, path)
	return "/media/" + bucket + "/" + path, nil
}

func (s *memStore) PublicURL(bucket, path string) string {
	return "/media/" + bucket + "/" + path
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x), A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestUploadImagesPartialFailure(t *testing.T) {
	store := &memStore{}
	svc := services.NewUploadService(store)

	files := []services.ImageFile{
		{Name: "front.png", Data: pngBytes(t, 40, 30)},
		{Name: "broken.png", Data: []byte("not an image")},
		{Name: "garden.png", Data: pngBytes(t, 30, 40)},
	}

	res := svc.UploadImages(storage.BucketProperties, "skyline-residences", files)

	if res.Uploaded != 2 || res.Failed != 1 {
		t.Fatalf("want 2 uploaded / 1 failed, got %d/%d", res.Uploaded, res.Failed)
	}
	if len(res.URLs) != 2 {
		t.Fatalf("want 2 URLs, got %v", res.URLs)
	}
	// Selection order survives: front (index 0) before garden (index 2).
	if !strings.Contains(res.URLs[0], "0-front") || !strings.Contains(res.URLs[1], "2-garden") {
		t.Fatalf("order lost: %v", res.URLs)
	}
	if got := res.Message(); got != "Successfully uploaded 2 images" {
		t.Fatalf("message: got %q", got)
	}
}

func TestUploadImagesAllFail(t *testing.T) {
	store := &memStore{}
	svc := services.NewUploadService(store)

	res := svc.UploadImages(storage.BucketProperties, "x", []services.ImageFile{
		{Name: "a.png"}, {Name: "b.png", Data: []byte("junk")},
	})
	if res.Uploaded != 0 || res.Failed != 2 || len(res.URLs) != 0 {
		t.Fatalf("got %+v", res)
	}
}

func TestUploadImagesResizesLargeInput(t *testing.T) {
	store := &memStore{}
	svc := services.NewUploadService(store)
	svc.MaxDimension = 64

	res := svc.UploadImages(storage.BucketProperties, "s", []services.ImageFile{
		{Name: "wide.png", Data: pngBytes(t, 300, 100)},
	})
	if res.Uploaded != 1 {
		t.Fatalf("got %+v", res)
	}
	if !strings.HasSuffix(store.paths[0], ".jpg") {
		t.Fatalf("re-encode to JPEG expected, got %q", store.paths[0])
	}
}

func TestUploadBrochure(t *testing.T) {
	store := &memStore{}
	svc := services.NewUploadService(store)

	url, err := svc.UploadBrochure("palm-court", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatal(err)
	}
	if url != "/media/"+storage.BucketBrochures+"/palm-court.pdf" {
		t.Fatalf("got %q", url)
	}
}
