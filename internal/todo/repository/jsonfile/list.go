package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"todo-web/internal/todo"
	"todo-web/internal/todo/repository"
)

// ListFiles returns every regular entry in the todo directory ending in .json,
// in directory order.
func (r *implRepository) ListFiles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		r.l.Errorf(ctx, "jsonfile.ListFiles: ReadDir %s: %v", r.dir, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), todo.FileExtension) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// ReadList parses one list file into its items, keeping file order.
func (r *implRepository) ReadList(ctx context.Context, filename string) ([]todo.Item, error) {
	if err := todo.ValidateFilename(filename); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path(filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", todo.ErrListNotFound, filename)
		}
		r.l.Errorf(ctx, "jsonfile.ReadList: ReadFile %s: %v", filename, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToRead, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		r.l.Warnf(ctx, "jsonfile.ReadList: %s is not valid JSON: %v", filename, err)
		return nil, fmt.Errorf("%w: %s: %v", todo.ErrMalformedList, filename, err)
	}
	if err := compiledListSchema.Validate(raw); err != nil {
		cause := firstSchemaCause(err)
		r.l.Warnf(ctx, "jsonfile.ReadList: %s failed schema validation: %s", filename, cause)
		return nil, fmt.Errorf("%w: %s: %s", todo.ErrMalformedList, filename, cause)
	}

	return itemsFromValidated(raw), nil
}

// itemsFromValidated reads task and done by their exact keys; encoding/json
// would also accept "Done" or "TASK".
func itemsFromValidated(raw any) []todo.Item {
	entries, _ := raw.([]any)
	items := make([]todo.Item, 0, len(entries))
	for _, e := range entries {
		obj, _ := e.(map[string]any)
		task, _ := obj["task"].(string)
		done, _ := obj["done"].(bool)
		items = append(items, todo.Item{Task: task, Done: done})
	}
	return items
}

// WriteList replaces the list file with items as an indented JSON array.
// The data is written to a temp file in the same directory and renamed over
// the target, so readers see either the old or the new list.
func (r *implRepository) WriteList(ctx context.Context, opt repository.WriteListOptions) error {
	if err := todo.ValidateFilename(opt.Filename); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	items := opt.Items
	if items == nil {
		items = []todo.Item{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}

	target := r.path(opt.Filename)
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	if err := r.replaceFile(target, buf.Bytes(), mode); err != nil {
		r.l.Errorf(ctx, "jsonfile.WriteList: %s: %v", opt.Filename, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}
	return nil
}

func (r *implRepository) replaceFile(target string, data []byte, mode fs.FileMode) error {
	tmp, err := os.CreateTemp(r.dir, ".todo-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}
	return os.Rename(tmpName, target)
}

func (r *implRepository) path(filename string) string {
	return filepath.Join(r.dir, filename)
}
