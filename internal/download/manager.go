package download

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Nius/Photo-Renamer/internal/config"
	"github.com/Nius/Photo-Renamer/internal/dash"
	"github.com/Nius/Photo-Renamer/internal/http"
	"github.com/Nius/Photo-Renamer/internal/imaging"
	"github.com/Nius/Photo-Renamer/internal/model"
	"github.com/Nius/Photo-Renamer/internal/naming"
	"golang.org/x/sync/errgroup"
)

// DateLayout is the upload date format reported by the portal, e.g.
// "6/15/2020 3:04:05 PM". Values are not zero-padded.
const DateLayout = "1/2/2006 3:4:5 PM"

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates the whole job: parsing saved album pages, running
// the naming pipeline, and downloading the photos.
type Manager struct {
	settings     *config.Settings
	httpClient   *http.Client
	imageService *imaging.Service

	photos      []*model.Photo
	sourceFiles []string

	totalBytes      int64
	receivedBytes   int64
	totalFiles      int32
	downloadedFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:     settings,
		httpClient:   http.NewClient(),
		imageService: imaging.NewService(),
		onProgress:   onProgress,
	}
}

// Initialize extracts photos from the given saved album pages.
//
// Files that cannot be read or recognized are reported through the
// progress callback and skipped. Initialize fails only when no photos at
// all could be extracted.
//
// When AutoUseInputDir is set, the output directory follows the input:
// photos are saved next to the first page they came from.
func (m *Manager) Initialize(paths []string) error {
	for _, path := range paths {
		photos, err := dash.ProcessFile(path)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error processing %s: %v", path, err), Level: LevelError})
			continue
		}

		m.photos = append(m.photos, photos...)
		m.sourceFiles = append(m.sourceFiles, path)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d photos in %s", len(photos), filepath.Base(path)), Level: LevelInfo})
	}

	if len(m.photos) == 0 {
		return fmt.Errorf("no photos found in %d input file(s)", len(paths))
	}

	if m.settings.AutoUseInputDir {
		m.settings.OutputDirectory = filepath.Dir(m.sourceFiles[0])
		m.progress(ProgressEvent{Message: fmt.Sprintf("Output directory set to %s", m.settings.OutputDirectory), Level: LevelVerbose})
	}
	return nil
}

// Photos returns the extracted photos in page order.
func (m *Manager) Photos() []*model.Photo {
	return m.photos
}

// Plan runs the naming pipeline over all photos with the current settings
// and returns the batch result. Call it again after any option change:
// each pass recomputes every non-customized photo from scratch.
func (m *Manager) Plan() naming.Result {
	cfg := m.settings.ToNamingConfig(m.settings.OutputDirectory)
	return naming.ProcessBatch(m.photos, cfg)
}

// Customize installs a hand-typed description for the photo at index i and
// validates it against the rest of the batch. The photo is excluded from
// automatic processing until Uncustomize is called.
func (m *Manager) Customize(i int, description string) {
	cfg := m.settings.ToNamingConfig(m.settings.OutputDirectory)
	photo := m.photos[i]
	photo.Description = description
	photo.Customized = true
	photo.Status = naming.ValidateCustomized(m.photos, i, cfg)
}

// Uncustomize returns the photo at index i to automatic processing and
// re-runs the pipeline so its description is recomputed.
func (m *Manager) Uncustomize(i int) naming.Result {
	m.photos[i].Customized = false
	return m.Plan()
}

// Execute downloads every photo that is not yet saved.
//
// Execution is refused outright while any photo carries a blocking
// status; resolve refusals and errors (or customize the offending
// descriptions) first. Individual download failures mark the photo
// ERROR_SEVERE and never abort the batch.
//
// After the downloads finish, Execute appends a job record to the
// statistics file in the output directory and, when configured and every
// photo saved cleanly, deletes the source page files.
func (m *Manager) Execute(ctx context.Context) error {
	for _, p := range m.photos {
		if p.Status.BlocksExecution() {
			return fmt.Errorf("cannot execute: %q has status %s", p.Description, p.Status)
		}
	}

	if err := imaging.EnsureDir(m.settings.OutputDirectory); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	m.calculateTotals(ctx)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentDownloads)

	for _, photo := range m.photos {
		photo := photo // capture
		if photo.Status == model.StatusSaved {
			atomic.AddInt32(&m.downloadedFiles, 1)
			continue
		}
		g.Go(func() error {
			if err := m.downloadPhoto(ctx, photo); err != nil {
				photo.Status = model.StatusErrorSevere
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading %s: %v", photo.Description, err), Level: LevelError})
				return nil // Continue with other photos
			}
			atomic.AddInt32(&m.downloadedFiles, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	m.writeStatistics()
	m.finish()
	return nil
}

// Progress returns current download progress.
func (m *Manager) Progress() (received, total int64, filesReceived, filesTotal int32) {
	return atomic.LoadInt64(&m.receivedBytes), atomic.LoadInt64(&m.totalBytes),
		atomic.LoadInt32(&m.downloadedFiles), atomic.LoadInt32(&m.totalFiles)
}

func (m *Manager) calculateTotals(ctx context.Context) {
	atomic.StoreInt64(&m.totalBytes, 0)
	atomic.StoreInt64(&m.receivedBytes, 0)
	atomic.StoreInt32(&m.downloadedFiles, 0)
	atomic.StoreInt32(&m.totalFiles, int32(len(m.photos)))

	for _, photo := range m.photos {
		if photo.Status == model.StatusSaved {
			continue
		}
		size, err := m.httpClient.GetFileSize(ctx, photo.SourceURL)
		if err == nil {
			atomic.AddInt64(&m.totalBytes, size)
		}
	}
}

func (m *Manager) downloadPhoto(ctx context.Context, photo *model.Photo) error {
	target := filepath.Join(m.settings.OutputDirectory, photo.Description+".jpg")

	// Never overwrite: a file already at the target means either a
	// previous half-finished run or a name clash with something the user
	// put there. Both need a human.
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("%s: %w", target, os.ErrExist)
	}

	postProcess := m.settings.ConvertToJPG || m.settings.DownscaleMaxSize > 0

	var err error
	for tries := 0; tries < m.settings.DownloadMaxRetries; tries++ {
		if postProcess {
			err = m.downloadProcessed(ctx, photo, target)
		} else {
			var prev int64
			err = m.httpClient.DownloadFile(ctx, photo.SourceURL, target, func(written, total int64) {
				atomic.AddInt64(&m.receivedBytes, written-prev)
				prev = written
			})
		}
		if err == nil || errors.Is(err, os.ErrExist) {
			// A collision will not resolve itself; don't retry it.
			break
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, m.settings.DownloadMaxRetries, photo.Description), Level: LevelWarning})
		m.waitForRetry(ctx, tries)
	}
	if err != nil {
		return err
	}

	if m.settings.UpdateCreationDate {
		m.stampUploadDate(photo, target)
	}

	if photo.Status != model.StatusErrorMinor {
		photo.Status = model.StatusSaved
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved: %s", filepath.Base(target)), Level: LevelVerbose})
	return nil
}

// downloadProcessed fetches the photo into memory, applies the configured
// post-processing, and writes the result to target.
func (m *Manager) downloadProcessed(ctx context.Context, photo *model.Photo, target string) error {
	data, err := m.httpClient.DownloadBytes(ctx, photo.SourceURL)
	if err != nil {
		return err
	}
	atomic.AddInt64(&m.receivedBytes, int64(len(data)))

	if m.settings.DownscaleMaxSize > 0 {
		data, err = m.imageService.Downscale(ctx, data, m.settings.DownscaleMaxSize)
		if err != nil {
			return err
		}
	} else if m.settings.ConvertToJPG {
		data, err = m.imageService.ConvertToJPEG(ctx, data)
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("%s: %w", target, os.ErrExist)
	}
	return imaging.WriteFile(ctx, target, data)
}

// stampUploadDate carries the photo's upload date onto the saved file. A
// date that does not parse, or a failed stamp, is ERROR_MINOR: the photo
// stays on disk, only its times are wrong.
func (m *Manager) stampUploadDate(photo *model.Photo, target string) {
	uploaded, err := time.ParseInLocation(DateLayout, photo.UploadDate, time.Local)
	if err != nil {
		photo.Status = model.StatusErrorMinor
		m.progress(ProgressEvent{Message: fmt.Sprintf("Unreadable upload date %q for %s", photo.UploadDate, photo.Description), Level: LevelWarning})
		return
	}
	if err := imaging.StampTimes(target, uploaded); err != nil {
		photo.Status = model.StatusErrorMinor
		m.progress(ProgressEvent{Message: fmt.Sprintf("Could not set file times for %s: %v", photo.Description, err), Level: LevelWarning})
	}
}

func (m *Manager) writeStatistics() {
	count := 0
	for _, p := range m.photos {
		if p.Status == model.StatusSaved || p.Status == model.StatusErrorMinor {
			count++
		}
	}

	archive := ""
	if len(m.sourceFiles) > 0 {
		archive = filepath.Base(m.sourceFiles[0])
	}

	path := filepath.Join(m.settings.OutputDirectory, "statistics.txt")
	if err := UpdateStatistics(path, NewJobRecord(count, archive)); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing statistics: %v", err), Level: LevelWarning})
	}
}

// finish reports the batch outcome and deletes the source files after a
// fully clean run.
func (m *Manager) finish() {
	clean := true
	for _, p := range m.photos {
		if p.Status != model.StatusSaved {
			clean = false
			break
		}
	}

	if !clean {
		m.progress(ProgressEvent{Message: "Finished, but some photos were not saved cleanly", Level: LevelWarning})
		return
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Successfully saved %d photos", len(m.photos)), Level: LevelSuccess})

	if !m.settings.DeleteInputFiles {
		return
	}
	for _, path := range m.sourceFiles {
		if err := m.deleteSource(path); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error deleting %s: %v", path, err), Level: LevelWarning})
		} else {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Deleted source file %s", filepath.Base(path)), Level: LevelVerbose})
		}
	}
}

// deleteSource removes a saved page and its browser support directory
// ("<name>_files"), the folder a browser creates next to a saved HTML
// page. The support directory is only removed when it holds plain files.
func (m *Manager) deleteSource(path string) error {
	if err := os.Remove(path); err != nil {
		return err
	}

	support := strings.TrimSuffix(path, filepath.Ext(path)) + "_files"
	if info, err := os.Stat(support); err == nil && info.IsDir() {
		if err := imaging.ClearDir(support); err != nil {
			return err
		}
		return os.Remove(support)
	}
	return nil
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.DownloadRetryCooldown * math.Pow(m.settings.DownloadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
