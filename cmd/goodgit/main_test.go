package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodgit/goodgit/pkg/objects"
	"github.com/goodgit/goodgit/pkg/objects/tree"
	"github.com/goodgit/goodgit/pkg/repository/gitrepo"
	"github.com/goodgit/goodgit/pkg/store"
)

const (
	blobTestHash   = "d670460b4b4aece5915caf5c68d12f560a9fe3e4"
	blobMoreHash   = "1234567890abcdef1234567890abcdef12345678"
	treeHash       = "99887766554433221100aabbccddeeff00112233"
	rootCommitHash = "aaaaaaaaaaaaaaaaaaaabbbbbbbbbbbbbbbbbbbb"
	tipCommitHash  = "ccccccccccccccccccccdddddddddddddddddddd"
)

// newFixtureRepo builds a repository populated with a known object
// graph: two blobs, a tree referencing both, and a two-commit chain.
func newFixtureRepo(t *testing.T) *gitrepo.Repo {
	t.Helper()

	repo := gitrepo.New(filepath.Join(t.TempDir(), "repo"))
	require.NoError(t, repo.Init(""))

	fos := store.NewFileObjectStore(repo.ObjectsDir())

	put := func(hash objects.ObjectHash, typ objects.ObjectType, content []byte) {
		require.NoError(t, fos.Put(hash, objects.NewSerializedObject(typ, content)))
	}

	// "test content\n" really hashes to blobTestHash; the rest of the
	// graph uses fabricated identifiers.
	put(blobTestHash, objects.BlobType, []byte("test content\n"))
	put(blobMoreHash, objects.BlobType, []byte("more content\nfrom a good client"))

	e1, err := tree.NewEntry(tree.ModeNormal, "test.txt", blobTestHash)
	require.NoError(t, err)
	e2, err := tree.NewEntry(tree.ModeNormal, "more.txt", blobMoreHash)
	require.NoError(t, err)
	treeContent, err := tree.NewTree([]tree.Entry{e1, e2}).Content()
	require.NoError(t, err)
	put(treeHash, objects.TreeType, treeContent)

	put(rootCommitHash, objects.CommitType, []byte(
		"tree "+treeHash+"\n"+
			"author Bob <hello@bob.test>\n"+
			"committer Alice <bye@alice.test>\n"+
			"\n"+
			"This is a good commit"))

	put(tipCommitHash, objects.CommitType, []byte(
		"tree "+treeHash+"\n"+
			"parent "+rootCommitHash+"\n"+
			"author Captain Nemo <nemo@nautilus.sea>\n"+
			"committer Sherlock Holmes <sherlock@baker.street>\n"+
			"\n"+
			"Here is a better commit"))

	return repo
}

func TestCatObject_Blob(t *testing.T) {
	repo := newFixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, catObject(repo, blobTestHash, &out))
	assert.Equal(t, "test content\n\n", out.String())
}

func TestCatObject_ShortRevisions(t *testing.T) {
	repo := newFixtureRepo(t)

	tests := []struct {
		rev  string
		want string
	}{
		{"d670", "test content\n\n"},
		{"d67046", "test content\n\n"},
		{blobTestHash, "test content\n\n"},
		{"1234567890", "more content\nfrom a good client\n"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		require.NoError(t, catObject(repo, tt.rev, &out), "revision %q", tt.rev)
		assert.Equal(t, tt.want, out.String(), "revision %q", tt.rev)
	}
}

func TestCatObject_Tree(t *testing.T) {
	repo := newFixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, catObject(repo, treeHash, &out))

	want := "100644 blob d670460b4b4aece5915caf5c68d12f560a9fe3e4    test.txt\n" +
		"100644 blob 1234567890abcdef1234567890abcdef12345678    more.txt\n"
	assert.Equal(t, want, out.String())
}

func TestCatObject_RootCommit(t *testing.T) {
	repo := newFixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, catObject(repo, rootCommitHash, &out))

	want := "tree: 99887766554433221100aabbccddeeff00112233\n" +
		"parent: \n" +
		"author: Bob <hello@bob.test>\n" +
		"committer: Alice <bye@alice.test>\n" +
		"\n" +
		"This is a good commit\n"
	assert.Equal(t, want, out.String())
}

func TestCatObject_ChildCommit(t *testing.T) {
	repo := newFixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, catObject(repo, tipCommitHash, &out))

	want := "tree: 99887766554433221100aabbccddeeff00112233\n" +
		"parent: aaaaaaaaaaaaaaaaaaaabbbbbbbbbbbbbbbbbbbb\n" +
		"author: Captain Nemo <nemo@nautilus.sea>\n" +
		"committer: Sherlock Holmes <sherlock@baker.street>\n" +
		"\n" +
		"Here is a better commit\n"
	assert.Equal(t, want, out.String())
}

func TestCatObject_NotFound(t *testing.T) {
	repo := newFixtureRepo(t)

	for _, rev := range []string{"", "d", "d6", "hello"} {
		var out bytes.Buffer
		e := catObject(repo, rev, &out)
		require.Error(t, e, "revision %q", rev)
		assert.Contains(t, e.Error(), "object not found", "revision %q", rev)
	}
}

func TestLogHistory(t *testing.T) {
	repo := newFixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, logHistory(repo, tipCommitHash, &out))

	want := "cccccc - Here is a better commit - \"Sherlock Holmes <sherlock@baker.street>\"\n" +
		"aaaaaa - This is a good commit - \"Alice <bye@alice.test>\"\n"
	assert.Equal(t, want, out.String())
}

func TestLogHistory_ShortRevision(t *testing.T) {
	repo := newFixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, logHistory(repo, "cccc", &out))
	assert.True(t, strings.HasPrefix(out.String(), "cccccc - Here is a better commit"))
}

func TestLogHistory_NonCommit(t *testing.T) {
	repo := newFixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, logHistory(repo, treeHash, &out))
	assert.Empty(t, out.String())
}

func TestShowRefs(t *testing.T) {
	repo := newFixtureRepo(t)

	writeRef := func(name, content string) {
		path := filepath.Join(repo.GitDir(), filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	writeRef("refs/heads/master", tipCommitHash)
	writeRef("refs/tags/v1.0.0", rootCommitHash)

	var out bytes.Buffer
	require.NoError(t, showRefs(repo, &out))

	want := tipCommitHash + " refs/heads/master\n" +
		rootCommitHash + " refs/tags/v1.0.0\n"
	assert.Equal(t, want, out.String())
}

func TestShowRefs_Empty(t *testing.T) {
	repo := newFixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, showRefs(repo, &out))
	assert.Empty(t, out.String())
}

func TestInitCommand(t *testing.T) {
	root := filepath.Join(t.TempDir(), "fresh")

	cmd := newInitCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{root, "bestbranch"})
	require.NoError(t, cmd.Execute())

	data, e := os.ReadFile(filepath.Join(root, ".git", "HEAD"))
	require.NoError(t, e)
	assert.Equal(t, "ref: refs/heads/bestbranch", string(data))
	assert.Contains(t, out.String(), "Initialized repository")
}

func TestHashObjectCommand_Stdin(t *testing.T) {
	cmd := newHashObjectCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("test content\n"))
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, blobTestHash+"\n", out.String())
}

func TestHashObjectCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("what is up, doc?"), 0644))

	cmd := newHashObjectCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "bd9dbf5aae1a3862dd1526723246b20206e5fc37\n", out.String())
}
