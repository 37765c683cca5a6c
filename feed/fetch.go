package feed

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	// BaseURL points to CAIDA's serial-1 AS relationship dataset directory.
	BaseURL = "https://publicdata.caida.org/datasets/as-relationships/serial-1"

	UserAgent = "asrel/1.0 (+https://github.com/cunha/asrel)"

	Timeout = 60 * time.Second
)

// SnapshotURL returns the download URL for a dataset snapshot serial,
// e.g. "20130801".
func SnapshotURL(serial string) string {
	return fmt.Sprintf("%v/%v.as-rel.txt.gz", BaseURL, serial)
}

// Fetch downloads the snapshot identified by serial and copies the compressed
// bytes to w.  The payload is left gzip-compressed, ready for db.Load.
func Fetch(serial string, w io.Writer) error {
	u := SnapshotURL(serial)
	log.WithField("url", u).Info("Downloading AS relationship snapshot")
	resp, err := doRequest("", u, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("fetching %v: unexpected response status %v", u, resp.Status)
	}
	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return errors.Wrapf(err, "downloading %v", u)
	}
	log.WithField("url", u).WithField("bytes", n).Info("Snapshot download complete")
	return nil
}

func doRequest(method string, u string, body io.Reader) (*http.Response, error) {
	req, err := newRequest(method, u, body)
	if err != nil {
		return nil, err
	}
	c := newClient()
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func newRequest(method string, u string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	return req, nil
}

func newClient() *http.Client {
	c := &http.Client{
		Timeout: Timeout,
	}
	return c
}
