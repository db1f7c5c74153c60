package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMediaResolverUploadsReference(t *testing.T) {
	files := mocks.NewMockFileStore(t)
	session := mocks.NewMockPostingSession(t)
	resolver := NewMediaResolver(files, nil, zerolog.Nop())

	files.EXPECT().ResolveName(mockAnyContext(), "cat.png").Return("attachments/cat.png", nil)
	files.EXPECT().ReadBinary(mockAnyContext(), "attachments/cat.png").Return([]byte("png-bytes"), nil)
	session.EXPECT().UploadMedia(mockAnyContext(), []byte("png-bytes"), "image/png").Return("m1", nil)

	resolved, err := resolver.Resolve(context.Background(), session, "hello ![[cat.png]]")
	require.NoError(t, err)

	assert.Equal(t, "hello", resolved.Text)
	assert.Equal(t, []string{"m1"}, resolved.MediaIDs)
	assert.Empty(t, resolved.Warnings)
}

func TestMediaResolverMissingFileBecomesWarning(t *testing.T) {
	files := mocks.NewMockFileStore(t)
	session := mocks.NewMockPostingSession(t)
	resolver := NewMediaResolver(files, nil, zerolog.Nop())

	files.EXPECT().ResolveName(mockAnyContext(), "dog.jpg").Return("", fmt.Errorf("find dog.jpg: %w", domain.ErrFileNotFound))

	resolved, err := resolver.Resolve(context.Background(), session, "[[dog.jpg]] look at this")
	require.NoError(t, err)

	assert.Equal(t, "look at this", resolved.Text)
	assert.Empty(t, resolved.MediaIDs)
	require.Len(t, resolved.Warnings, 1)
	assert.Equal(t, "[[dog.jpg]]", resolved.Warnings[0].Reference)
	assert.Contains(t, resolved.Warnings[0].Reason, "file not found")
	session.AssertNotCalled(t, "UploadMedia", mock.Anything, mock.Anything, mock.Anything)
}

func TestMediaResolverKeepsSuccessfulUploadsInOrder(t *testing.T) {
	files := mocks.NewMockFileStore(t)
	session := mocks.NewMockPostingSession(t)
	resolver := NewMediaResolver(files, nil, zerolog.Nop())

	for _, name := range []string{"a.gif", "b.webp", "c.jpeg"} {
		files.EXPECT().ResolveName(mockAnyContext(), name).Return(name, nil)
		files.EXPECT().ReadBinary(mockAnyContext(), name).Return([]byte(name), nil)
	}
	session.EXPECT().UploadMedia(mockAnyContext(), []byte("a.gif"), "image/gif").Return("m-a", nil)
	session.EXPECT().UploadMedia(mockAnyContext(), []byte("b.webp"), "image/webp").Return("", errors.New("413 Payload Too Large"))
	session.EXPECT().UploadMedia(mockAnyContext(), []byte("c.jpeg"), "image/jpeg").Return("m-c", nil)

	text := "one ![[a.gif]] two ![[b.webp]] three ![[c.jpeg]]"
	resolved, err := resolver.Resolve(context.Background(), session, text)
	require.NoError(t, err)

	assert.Equal(t, "one  two  three", resolved.Text)
	assert.Equal(t, []string{"m-a", "m-c"}, resolved.MediaIDs)
	require.Len(t, resolved.Warnings, 1)
	assert.Equal(t, "![[b.webp]]", resolved.Warnings[0].Reference)
	assert.LessOrEqual(t, len(resolved.MediaIDs), 3)
}

func TestMediaResolverEmptyMediaIDIsDropped(t *testing.T) {
	files := mocks.NewMockFileStore(t)
	session := mocks.NewMockPostingSession(t)
	resolver := NewMediaResolver(files, nil, zerolog.Nop())

	files.EXPECT().ResolveName(mockAnyContext(), "x.bmp").Return("x.bmp", nil)
	files.EXPECT().ReadBinary(mockAnyContext(), "x.bmp").Return([]byte{0x42, 0x4d}, nil)
	session.EXPECT().UploadMedia(mockAnyContext(), []byte{0x42, 0x4d}, "image/bmp").Return("", nil)

	resolved, err := resolver.Resolve(context.Background(), session, "![[x.bmp]]")
	require.NoError(t, err)

	assert.Empty(t, resolved.Text)
	assert.Empty(t, resolved.MediaIDs)
	require.Len(t, resolved.Warnings, 1)
	assert.Contains(t, resolved.Warnings[0].Reason, "no media id")
}

func TestMediaResolverIgnoresNonImageLinks(t *testing.T) {
	files := mocks.NewMockFileStore(t)
	session := mocks.NewMockPostingSession(t)
	resolver := NewMediaResolver(files, nil, zerolog.Nop())

	resolved, err := resolver.Resolve(context.Background(), session, "see [[notes.md]] and [[cat.svg]]")
	require.NoError(t, err)

	assert.Equal(t, "see [[notes.md]] and [[cat.svg]]", resolved.Text)
	assert.Empty(t, resolved.MediaIDs)
	assert.Empty(t, resolved.Warnings)
}

func TestMediaResolverStopsOnCancelledContext(t *testing.T) {
	files := mocks.NewMockFileStore(t)
	session := mocks.NewMockPostingSession(t)
	resolver := NewMediaResolver(files, nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resolver.Resolve(ctx, session, "![[cat.png]]")
	require.ErrorIs(t, err, context.Canceled)
	files.AssertNotCalled(t, "ResolveName", mock.Anything, mock.Anything)
}

func TestMediaResolverRecordsUploadMetrics(t *testing.T) {
	files := mocks.NewMockFileStore(t)
	session := mocks.NewMockPostingSession(t)
	metrics := mocks.NewMockPostingMetrics(t)
	resolver := NewMediaResolver(files, metrics, zerolog.Nop())

	files.EXPECT().ResolveName(mockAnyContext(), "ok.png").Return("ok.png", nil)
	files.EXPECT().ReadBinary(mockAnyContext(), "ok.png").Return([]byte("ok"), nil)
	session.EXPECT().UploadMedia(mockAnyContext(), []byte("ok"), "image/png").Return("m1", nil)
	files.EXPECT().ResolveName(mockAnyContext(), "gone.png").Return("", domain.ErrFileNotFound)
	metrics.EXPECT().RecordUpload(true).Once()
	metrics.EXPECT().RecordUpload(false).Once()

	_, err := resolver.Resolve(context.Background(), session, "![[ok.png]] ![[gone.png]]")
	require.NoError(t, err)
}
