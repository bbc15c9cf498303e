package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hybridbfs/graphutils"
)

type fakeS3 struct {
	objects map[string][]byte
	gotKey  string
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.gotKey = aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	b, ok := f.objects[f.gotKey]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func binBytes(t *testing.T, g *graphutils.Graph) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, graphutils.WriteGraphToBin(&buf, g))
	return buf.Bytes()
}

func TestLoadLocalFormats(t *testing.T) {
	dir := t.TempDir()
	want := graphutils.Chain(5)

	binPath := filepath.Join(dir, "chain.bin")
	require.NoError(t, os.WriteFile(binPath, binBytes(t, want), 0o644))
	adjPath := filepath.Join(dir, "chain.adj")
	require.NoError(t, os.WriteFile(adjPath, []byte("0 1\n1 2\n2 3\n3 4\n"), 0o644))

	o := &Opener{}
	ctx := context.Background()
	for _, p := range []string{binPath, adjPath} {
		g, err := o.Load(ctx, p, "")
		require.NoError(t, err, p)
		assert.Equal(t, want.OutgoingEdges, g.OutgoingEdges, p)
		assert.Equal(t, want.IncomingStarts, g.IncomingStarts, p)
	}

	_, err := o.Load(ctx, filepath.Join(dir, "missing.bin"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = o.Load(ctx, binPath, "parquet")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadFromS3(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{
		"graphs/web/star.bin": binBytes(t, graphutils.Star(3, 0)),
	}}
	o := &Opener{S3: fake}

	g, err := o.Load(context.Background(), "s3://graphs/web/star.bin", "")
	require.NoError(t, err)
	assert.Equal(t, "graphs/web/star.bin", fake.gotKey)
	assert.Equal(t, 4, g.NumNodes)
	assert.Equal(t, 3, g.OutDegree(0))

	_, err = o.Load(context.Background(), "s3://graphs/absent.bin", "")
	assert.Error(t, err)
	_, err = o.Open(context.Background(), "s3://bucket-only")
	assert.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatBin, FormatFor("g.bin"))
	assert.Equal(t, FormatBin, FormatFor("s3://b/g"))
	assert.Equal(t, FormatBytePD, FormatFor("G.BYTEPD"))
	assert.Equal(t, FormatAdj, FormatFor("tiny.txt"))
}
