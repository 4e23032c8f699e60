package vehicle

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/optimrental/rental-api/internal/pkg/imaging"
	"github.com/optimrental/rental-api/internal/pkg/storage"
)

type fakeRepo struct {
	vehicles map[uuid.UUID]*Vehicle
}

func newFakeRepo(vehicles ...*Vehicle) *fakeRepo {
	f := &fakeRepo{vehicles: make(map[uuid.UUID]*Vehicle)}
	for _, v := range vehicles {
		f.vehicles[v.ID] = v
	}
	return f
}

func (f *fakeRepo) Create(ctx context.Context, v *Vehicle) error {
	f.vehicles[v.ID] = v
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (f *fakeRepo) List(ctx context.Context, onlyAvailable bool) ([]*Vehicle, error) {
	var out []*Vehicle
	for _, v := range f.vehicles {
		if onlyAvailable && !v.IsAvailable {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, v *Vehicle) error {
	existing, ok := f.vehicles[v.ID]
	if !ok {
		return ErrVehicleNotFound
	}
	v.CreatedAt = existing.CreatedAt
	f.vehicles[v.ID] = v
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.vehicles[id]; !ok {
		return ErrVehicleNotFound
	}
	delete(f.vehicles, id)
	return nil
}

func (f *fakeRepo) AppendImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	v, ok := f.vehicles[id]
	if !ok {
		return ErrVehicleNotFound
	}
	v.Images = append(v.Images, imageURL)
	return nil
}

type fakeStore struct {
	saved map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string][]byte)}
}

func (f *fakeStore) Save(ctx context.Context, filePath string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.saved[filePath] = data
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, filePath string) error {
	delete(f.saved, filePath)
	return nil
}

func (f *fakeStore) GetURL(filePath string) string {
	return "https://cdn.example.com/" + filePath
}

func TestCreateAndGet(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, nil)

	v, err := svc.Create(context.Background(), &CreateVehicleRequest{
		Name:         "Audi RS6 Avant",
		PricePerHour: 90,
		IsAvailable:  true,
		Transmission: "automatic",
		Features:     []string{"quattro", "panorama roof"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := svc.GetByID(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Name != "Audi RS6 Avant" || got.PricePerHour != 90 {
		t.Errorf("got %+v", got)
	}
	if len(got.Features) != 2 {
		t.Errorf("Features = %v", got.Features)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, nil, nil)

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("err = %v, want ErrVehicleNotFound", err)
	}
}

func TestListOnlyAvailable(t *testing.T) {
	available := &Vehicle{ID: uuid.New(), Name: "BMW X5", IsAvailable: true, CreatedAt: time.Now()}
	parked := &Vehicle{ID: uuid.New(), Name: "VW Golf", IsAvailable: false, CreatedAt: time.Now()}
	svc := NewService(newFakeRepo(available, parked), nil, nil, nil)

	items, err := svc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Name != "BMW X5" {
		t.Errorf("name = %q", items[0].Name)
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestAddImage(t *testing.T) {
	v := &Vehicle{ID: uuid.New(), Name: "BMW X5", IsAvailable: true, CreatedAt: time.Now()}
	repo := newFakeRepo(v)
	store := newFakeStore()
	svc := NewService(repo, nil, store, imaging.NewProcessor(imaging.DefaultConfig()))

	url, err := svc.AddImage(context.Background(), v.ID, "side.png", bytes.NewReader(pngBytes(t, 640, 480)))
	if err != nil {
		t.Fatalf("AddImage returned error: %v", err)
	}

	if !strings.HasPrefix(url, "https://cdn.example.com/vehicles/"+v.ID.String()+"/") {
		t.Errorf("url = %q", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %q, want .png suffix", url)
	}

	// Original plus thumbnail
	if len(store.saved) != 2 {
		t.Errorf("stored %d objects, want 2", len(store.saved))
	}
	if len(v.Images) != 1 || !strings.HasSuffix(v.Images[0], ".png") {
		t.Errorf("Images = %v", v.Images)
	}
}

func TestAddImageRejectsNonImage(t *testing.T) {
	v := &Vehicle{ID: uuid.New(), Name: "BMW X5", CreatedAt: time.Now()}
	svc := NewService(newFakeRepo(v), nil, newFakeStore(), imaging.NewProcessor(imaging.DefaultConfig()))

	_, err := svc.AddImage(context.Background(), v.ID, "notes.txt", strings.NewReader("plain text, not an image"))
	if !errors.Is(err, storage.ErrInvalidMimeType) {
		t.Fatalf("err = %v, want ErrInvalidMimeType", err)
	}
}

func TestAddImageUnknownVehicle(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, newFakeStore(), imaging.NewProcessor(imaging.DefaultConfig()))

	_, err := svc.AddImage(context.Background(), uuid.New(), "side.png", bytes.NewReader(pngBytes(t, 10, 10)))
	if !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("err = %v, want ErrVehicleNotFound", err)
	}
}
