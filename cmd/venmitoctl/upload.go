package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"venmito/internal/domain/constants"
	"venmito/internal/infra/codec"
	"venmito/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type uploadOptions struct {
	server      string
	diagnostics bool
	timeout     time.Duration
}

func newUploadCmd() *cobra.Command {
	var opts uploadOptions

	cmd := &cobra.Command{
		Use:       "upload <family> <file>",
		Short:     "Upload a JSON, YAML, CSV or XML file to a running server",
		Long:      "Families: " + strings.Join(constants.Families, ", ") + ". Upload people before the families that reference them.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: constants.Families,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd.Context(), cmd.OutOrStdout(), opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.server, "server", "http://localhost:5000", "Base URL of the venmito server")
	cmd.Flags().BoolVar(&opts.diagnostics, "diagnostics", false, "Print received and skipped rows as well")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", time.Minute, "Request timeout")

	return cmd
}

// runUpload posts the file with the content type of its extension and prints the server reply.
func runUpload(ctx context.Context, out io.Writer, opts uploadOptions, family, path string) error {
	if !slices.Contains(constants.Families, family) {
		return errors.Errorf("unknown family %q (want one of %s)", family, strings.Join(constants.Families, ", "))
	}

	format, err := codec.FormatFromFilename(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read upload file")
	}

	endpoint, err := url.JoinPath(opts.server, family, "upload")
	if err != nil {
		return errors.Wrap(err, "build upload url")
	}
	if opts.diagnostics {
		endpoint += "?diagnostics=true"
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", format.ContentType())

	start := time.Now()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "upload request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read upload response")
	}
	fmt.Fprintf(out, "%s %s (%s, sha256 %s) -> %d in %s\n",
		family, path, util.FormatBytes(int64(len(data))), util.Digest(data)[:12], resp.StatusCode, util.FormatDuration(time.Since(start)))
	fmt.Fprintln(out, strings.TrimSpace(string(body)))

	if resp.StatusCode != http.StatusCreated {
		return errors.Errorf("upload failed with status %d", resp.StatusCode)
	}

	return nil
}
