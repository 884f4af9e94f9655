package driver

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/blang/semver"
	"github.com/golang/glog"
	"github.com/google/go-github/v27/github"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

const (
	// Bucket URL: https://console.cloud.google.com/storage/browser/chromium-browser-snapshots
	chromiumSnapshotBucket = "chromium-browser-snapshots"
	chromiumPrefixLinux64  = "Linux_x64"
	chromiumLastChangeFile = "Linux_x64/LAST_CHANGE"
	chromeDriverArchive    = "chromedriver_linux64.zip"

	edgeDriverBaseURL = "https://msedgedriver.azureedge.net"
	edgeDriverArchive = "edgedriver_linux64.zip"
)

// geckodriverAssetRE matches the linux64 tarball among a geckodriver
// release's assets.
var geckodriverAssetRE = regexp.MustCompile(`^geckodriver-.*linux64\.tar\.gz$`)

// minGeckodriverVersion is the oldest geckodriver whose wire behavior
// this framework is known to work with.
var minGeckodriverVersion = semver.MustParse("0.24.0")

// ensureManagedDriver returns the path to a managed driver binary for
// the browser, downloading it into dir on first use.
func ensureManagedDriver(ctx context.Context, b Browser, dir string) (string, error) {
	binary := filepath.Join(dir, driverBinaries[b])
	if _, err := os.Stat(binary); err == nil {
		return binary, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("driver: creating %s: %w", dir, err)
	}

	var err error
	switch b {
	case Chrome:
		err = fetchChromeDriver(ctx, dir)
	case Firefox:
		err = fetchGeckoDriver(ctx, dir)
	case Edge:
		err = fetchEdgeDriver(ctx, dir)
	default:
		err = fmt.Errorf("driver: no managed driver for browser %q", b)
	}
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(binary); err != nil {
		return "", fmt.Errorf("driver: %s missing after download", binary)
	}
	if err := os.Chmod(binary, 0o755); err != nil {
		return "", fmt.Errorf("driver: marking %s executable: %w", binary, err)
	}
	return binary, nil
}

// Prefetch downloads the driver binaries for all supported browsers into
// dir, in parallel. Used by the fetchdrivers tool to prepare offline
// runs.
func Prefetch(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("driver: creating %s: %w", dir, err)
	}
	var g errgroup.Group
	for b := range driverBinaries {
		b := b
		g.Go(func() error {
			if _, err := ensureManagedDriver(ctx, b, dir); err != nil {
				return fmt.Errorf("%s: %w", b, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// fetchChromeDriver downloads the chromedriver matching the latest
// chromium snapshot from the chromium-browser-snapshots bucket.
func fetchChromeDriver(ctx context.Context, dir string) error {
	client, err := storage.NewClient(ctx, option.WithoutAuthentication())
	if err != nil {
		return fmt.Errorf("driver: creating storage client: %w", err)
	}
	defer client.Close()

	bkt := client.Bucket(chromiumSnapshotBucket)
	r, err := bkt.Object(chromiumLastChangeFile).NewReader(ctx)
	if err != nil {
		return fmt.Errorf("driver: reading gs://%s/%s: %w", chromiumSnapshotBucket, chromiumLastChangeFile, err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("driver: reading gs://%s/%s: %w", chromiumSnapshotBucket, chromiumLastChangeFile, err)
	}
	latestBuild := strings.TrimSpace(string(data))

	object := path.Join(chromiumPrefixLinux64, latestBuild, chromeDriverArchive)
	attrs, err := bkt.Object(object).Attrs(ctx)
	if err != nil {
		return fmt.Errorf("driver: resolving gs://%s/%s: %w", chromiumSnapshotBucket, object, err)
	}

	archive := filepath.Join(dir, chromeDriverArchive)
	if err := downloadFile(ctx, attrs.MediaLink, archive, attrs.MD5); err != nil {
		return err
	}
	if err := extract(archive, dir); err != nil {
		return err
	}
	// The archive unpacks into chromedriver_linux64/chromedriver.
	unpacked := filepath.Join(dir, "chromedriver_linux64", "chromedriver")
	target := filepath.Join(dir, "chromedriver")
	os.RemoveAll(target) // Ignore error.
	if err := os.Rename(unpacked, target); err != nil {
		return fmt.Errorf("driver: renaming %q to %q: %w", unpacked, target, err)
	}
	return nil
}

// fetchGeckoDriver downloads the latest geckodriver release published by
// mozilla/geckodriver.
func fetchGeckoDriver(ctx context.Context, dir string) error {
	client := github.NewClient(nil)
	rel, _, err := client.Repositories.GetLatestRelease(ctx, "mozilla", "geckodriver")
	if err != nil {
		return fmt.Errorf("driver: resolving latest geckodriver release: %w", err)
	}
	if err := checkGeckodriverTag(rel.GetTagName()); err != nil {
		return err
	}

	for _, a := range rel.Assets {
		if !geckodriverAssetRE.MatchString(a.GetName()) {
			continue
		}
		u := a.GetBrowserDownloadURL()
		if u == "" {
			return fmt.Errorf("driver: release asset %s has no download URL", a.GetName())
		}
		archive := filepath.Join(dir, "geckodriver.tar.gz")
		if err := downloadFile(ctx, u, archive, nil); err != nil {
			return err
		}
		return extract(archive, dir)
	}
	return fmt.Errorf("driver: no linux64 asset in geckodriver release %s", rel.GetTagName())
}

// checkGeckodriverTag rejects releases older than the minimum supported
// geckodriver.
func checkGeckodriverTag(tag string) error {
	v, err := semver.ParseTolerant(strings.TrimPrefix(tag, "v"))
	if err != nil {
		return fmt.Errorf("driver: unparseable geckodriver release tag %q: %w", tag, err)
	}
	if v.LT(minGeckodriverVersion) {
		return fmt.Errorf("driver: geckodriver %s is older than the minimum supported %s", tag, minGeckodriverVersion)
	}
	return nil
}

// fetchEdgeDriver downloads the latest stable msedgedriver from the
// Microsoft CDN.
func fetchEdgeDriver(ctx context.Context, dir string) error {
	version, err := latestEdgeDriverVersion(ctx)
	if err != nil {
		return err
	}
	u := fmt.Sprintf("%s/%s/%s", edgeDriverBaseURL, version, edgeDriverArchive)
	archive := filepath.Join(dir, edgeDriverArchive)
	if err := downloadFile(ctx, u, archive, nil); err != nil {
		return err
	}
	return extract(archive, dir)
}

func latestEdgeDriverVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, edgeDriverBaseURL+"/LATEST_STABLE", nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("driver: resolving latest msedgedriver: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("driver: resolving latest msedgedriver: status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("driver: resolving latest msedgedriver: %w", err)
	}
	version := decodeVersionText(data)
	if version == "" {
		return "", fmt.Errorf("driver: empty msedgedriver version")
	}
	return version, nil
}

// decodeVersionText normalizes the CDN's version file, which is served
// as UTF-16LE with a BOM.
func decodeVersionText(data []byte) string {
	data = bytes.TrimPrefix(data, []byte{0xef, 0xbb, 0xbf})
	data = bytes.TrimPrefix(data, []byte{0xff, 0xfe})
	data = bytes.ReplaceAll(data, []byte{0x00}, nil)
	return strings.TrimSpace(string(data))
}

// downloadFile fetches url into dest, verifying the MD5 checksum when
// one is known.
func downloadFile(ctx context.Context, url, dest string, md5sum []byte) (err error) {
	glog.Infof("Downloading %q from %q", dest, url)

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("driver: creating %q: %w", dest, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("driver: closing %q: %w", dest, closeErr)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("driver: downloading %q: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("driver: downloading %q: status %s", url, resp.Status)
	}

	if len(md5sum) > 0 {
		h := md5.New()
		if _, err := io.Copy(io.MultiWriter(f, h), resp.Body); err != nil {
			return fmt.Errorf("driver: downloading %q: %w", url, err)
		}
		if got := h.Sum(nil); !bytes.Equal(got, md5sum) {
			return fmt.Errorf("driver: %q: got md5 %s, want %s", dest, hex.EncodeToString(got), hex.EncodeToString(md5sum))
		}
		return nil
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("driver: downloading %q: %w", url, err)
	}
	return nil
}

// extract unpacks a .zip or .tar.gz archive into dir.
func extract(archive, dir string) error {
	var cmd []string
	switch path.Ext(archive) {
	case ".zip":
		cmd = []string{"unzip", "-d", dir, "-o", archive}
	case ".gz":
		cmd = []string{"tar", "-xzf", archive, "-C", dir}
	default:
		return fmt.Errorf("driver: unsupported archive %q", archive)
	}
	glog.Infof("Unzipping %q", archive)
	if err := exec.Command(cmd[0], cmd[1:]...).Run(); err != nil {
		return fmt.Errorf("driver: unpacking %q: %w", archive, err)
	}
	return nil
}
