package ports

import "context"

// FileStore reads notes and attachments from the user's vault.
// ResolveName returns domain.ErrFileNotFound when no file matches.
type FileStore interface {
	ReadText(ctx context.Context, ref string) (string, error)
	ReadBinary(ctx context.Context, ref string) ([]byte, error)
	ResolveName(ctx context.Context, name string) (string, error)
}
