package source

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"

	"github.com/CodMac/go-treesitter-class-finder/model"
)

// directory 把相对路径 a/b/C.java 映射为限定名 a.b.C
type directory struct {
	fs         afs.Service
	rootURL    string
	extension  string
	skipHidden bool
}

func (d *directory) Load(ctx context.Context, add func(elem *model.CodeElement)) error {
	files, err := listFiles(ctx, d.fs, d.rootURL, d.extension, d.skipHidden)
	if err != nil {
		return err
	}
	for _, f := range files {
		qn := strings.ReplaceAll(strings.TrimSuffix(f.RelPath, d.extension), "/", ".")
		add(&model.CodeElement{Name: model.SimpleName(qn), QualifiedName: qn, Path: f.RelPath})
	}
	return nil
}

type fileEntry struct {
	URL     string
	RelPath string
}

// listFiles 递归列出 rootURL 下所有以 extension 结尾的文件, 按相对路径排序
func listFiles(ctx context.Context, fs afs.Service, rootURL, extension string, skipHidden bool) ([]fileEntry, error) {
	objects, err := fs.List(ctx, rootURL, option.NewRecursive(true))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %v", rootURL)
	}
	rootPath := strings.TrimRight(url.Path(rootURL), "/")
	var result []fileEntry
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		objectPath := url.Path(object.URL())
		if !strings.HasPrefix(objectPath, rootPath+"/") {
			continue
		}
		relPath := objectPath[len(rootPath)+1:]
		if !strings.HasSuffix(relPath, extension) {
			continue
		}
		if skipHidden && inHiddenDir(relPath) {
			continue
		}
		result = append(result, fileEntry{URL: object.URL(), RelPath: relPath})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RelPath < result[j].RelPath
	})
	return result, nil
}

// inHiddenDir 判断路径是否位于 '.' 开头的目录下 (如 .git, .idea)
func inHiddenDir(relPath string) bool {
	segments := strings.Split(relPath, "/")
	for _, segment := range segments[:len(segments)-1] {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
