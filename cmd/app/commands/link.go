package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	linkUseCase "github.com/vdolink/vdolink/internal/link/usecase"
)

// ClipboardWriter places text on the system clipboard.
type ClipboardWriter func(text string) error

type linkOutput struct {
	URL       string `json:"url"`
	Found     *bool  `json:"found,omitempty"`
	Generated *bool  `json:"generated,omitempty"`
	Copied    *bool  `json:"copied,omitempty"`
}

// RunGenerateLink creates a link with a random push id and audience password, stores it
// encrypted and prints it. With copyToClipboard the link is also placed on the clipboard.
func RunGenerateLink(
	ctx context.Context,
	useCase linkUseCase.LinkUseCase,
	logger *slog.Logger,
	writer io.Writer,
	clipboard ClipboardWriter,
	copyToClipboard bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("generating new link")

	url, err := useCase.GenerateAndPersist(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate link: %w", err)
	}

	if copyToClipboard {
		if err := clipboard(url); err != nil {
			return fmt.Errorf("link stored but could not be copied to the clipboard: %w", err)
		}
	}

	if format == FormatJSON {
		outputJSON(writer, linkOutput{URL: url, Copied: &copyToClipboard})
	} else {
		_, _ = fmt.Fprintln(writer, url)
		if copyToClipboard {
			_, _ = fmt.Fprintln(writer, "Link copied to clipboard.")
		}
	}

	logger.Info("link generated", slog.Bool("copied", copyToClipboard))
	return nil
}

// RunSetLink stores a link built from pushID and an optional audience password. Input
// errors are printed with their user-facing reason and returned.
func RunSetLink(
	ctx context.Context,
	useCase linkUseCase.LinkUseCase,
	logger *slog.Logger,
	writer io.Writer,
	pushID, audience string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("setting manual link", slog.Bool("audience", audience != ""))

	if err := useCase.SetManual(ctx, pushID, audience); err != nil {
		reportUserError(writer, format, err)
		return fmt.Errorf("failed to set link: %w", err)
	}

	url, _ := useCase.Load(ctx)
	if format == FormatJSON {
		outputJSON(writer, linkOutput{URL: url})
	} else {
		_, _ = fmt.Fprintln(writer, "Link saved.")
		if url != "" {
			_, _ = fmt.Fprintln(writer, url)
		}
	}

	logger.Info("manual link saved")
	return nil
}

// RunShowLink prints the stored link. A missing or unreadable link is reported, not failed.
func RunShowLink(
	ctx context.Context,
	useCase linkUseCase.LinkUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	url, ok := useCase.Load(ctx)
	if format == FormatJSON {
		outputJSON(writer, linkOutput{URL: url, Found: &ok})
	} else if ok {
		_, _ = fmt.Fprintln(writer, url)
	} else {
		_, _ = fmt.Fprintln(writer, "No link stored. Run generate-link or set-link first.")
	}

	logger.Debug("link shown", slog.Bool("found", ok))
	return nil
}

// RunEnsureLink prints the stored link, generating and storing a new one first when none
// can be loaded.
func RunEnsureLink(
	ctx context.Context,
	useCase linkUseCase.LinkUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	url, generated, err := useCase.Ensure(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure link: %w", err)
	}

	if format == FormatJSON {
		outputJSON(writer, linkOutput{URL: url, Generated: &generated})
	} else {
		_, _ = fmt.Fprintln(writer, url)
	}

	logger.Info("link ensured", slog.Bool("generated", generated))
	return nil
}
