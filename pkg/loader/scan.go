package loader

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"dario.cat/mergo"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/errors"
)

// scan walks the source root into the tree.
func (l *Loader) scan(ctx context.Context) (*catalog.Collection, error) {
	root := filepath.Clean(l.cfg.Source.Path)
	if _, err := l.fs.Stat(root); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTreeLoad, "source root %s", root)
	}
	return l.scanCollection(ctx, root, root)
}

// scanCollection builds a collection from a directory, recursing into
// subdirectories. Component directories become leaves; everything else
// nests.
func (l *Loader) scanCollection(ctx context.Context, root, dir string) (*catalog.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTreeLoad, "reading directory %s", dir)
	}

	name := filepath.Base(dir)
	col := &catalog.Collection{
		Handle: strings.ToLower(name),
		Label:  name,
		Path:   dir,
	}

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !entry.IsDir() {
			// Loose files directly under a collection carry no meaning.
			l.logger.Debug().Str("path", filepath.Join(dir, entry.Name())).Msg("Skipping file outside any component")
			continue
		}

		sub := filepath.Join(dir, entry.Name())
		isComp, err := l.isComponentDir(sub, entry.Name())
		if err != nil {
			return nil, err
		}

		var item catalog.Entity
		if isComp {
			item, err = l.scanComponent(ctx, root, sub, entry.Name())
		} else {
			item, err = l.scanCollection(ctx, root, sub)
		}
		if err != nil {
			return nil, err
		}
		col.Items = append(col.Items, item)
	}

	return col, nil
}

// isComponentDir reports whether dir holds a primary view, a view file
// whose name matches the directory.
func (l *Loader) isComponentDir(dir, name string) (bool, error) {
	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrTreeLoad, "reading directory %s", dir)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if l.classify.IsView(entry.Name()) && strings.EqualFold(l.classify.ViewName(entry.Name()), name) {
			return true, nil
		}
	}
	return false, nil
}

// scanComponent builds a component from a directory: primary view,
// variant views, config file, readme and assets.
func (l *Loader) scanComponent(ctx context.Context, root, dir, name string) (*catalog.Component, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTreeLoad, "reading directory %s", dir)
	}

	handle := strings.ToLower(name)
	comp := &catalog.Component{
		Handle: handle,
		Label:  handle,
		Path:   dir,
	}

	var views []viewFile
	var confPath string

	for _, entry := range entries {
		base := entry.Name()
		if strings.HasPrefix(base, ".") {
			continue
		}
		full := filepath.Join(dir, base)

		if entry.IsDir() {
			l.logger.Debug().Str("path", full).Msg("Skipping directory inside component")
			continue
		}

		switch {
		case l.classify.IsConfig(base):
			if !strings.EqualFold(strings.TrimSuffix(base, filepath.Ext(base)), name+".config") {
				l.logger.Warn().Str("path", full).Msg("Config file does not match component name, skipping")
				continue
			}
			confPath = full

		case l.classify.IsReadme(base):
			comp.Readme = full

		case l.classify.IsView(base):
			if !strings.EqualFold(l.classify.ViewName(base), name) {
				l.logger.Warn().Str("path", full).Msg("View file does not match component name, skipping")
				continue
			}
			comp.ViewPath = full

		case l.classify.IsVarView(base):
			if !strings.EqualFold(l.classify.ViewName(base), name) {
				l.logger.Warn().Str("path", full).Msg("Variant view does not match component name, skipping")
				continue
			}
			views = append(views, viewFile{path: full, handle: l.classify.VariantHandle(base)})

		case l.classify.IsAsset(base):
			comp.Assets = append(comp.Assets, l.newAsset(root, full, base))
		}
	}

	conf, err := l.readConfig(confPath)
	if err != nil {
		return nil, err
	}

	l.applyConfig(comp, conf)
	comp.Variants = l.buildVariants(comp, conf, views)

	l.logger.Debug().
		Str("component", comp.Handle).
		Int("variants", len(comp.Variants)).
		Int("assets", len(comp.Assets)).
		Msg("Component scanned")

	return comp, nil
}

// applyConfig folds the config file and catalog-wide defaults into the
// component record.
func (l *Loader) applyConfig(comp *catalog.Component, conf *componentConfig) {
	comp.Status = l.cfg.Status.Default
	comp.Preview = l.cfg.Render.Preview
	comp.Collated = l.cfg.Render.Collated

	if conf == nil {
		return
	}
	if conf.Label != "" {
		comp.Label = conf.Label
	}
	if conf.Context != nil {
		comp.Context = catalog.Context(conf.Context)
	}
	if conf.Status != "" {
		comp.Status = conf.Status
	}
	if conf.Preview != "" {
		comp.Preview = conf.Preview
	}
	if conf.Collated != nil {
		comp.Collated = *conf.Collated
	}
	comp.Hidden = conf.Hidden
}

// viewFile is one splitter-named view found in a component directory.
type viewFile struct {
	path   string
	handle string
}

// buildVariants assembles a component's ordered variant list. The
// primary view always yields a leading "default" variant; config
// declarations follow in declared order, then remaining view files in
// filename order. A handle declared in config and backed by a view file
// is a single variant.
func (l *Loader) buildVariants(comp *catalog.Component, conf *componentConfig, views []viewFile) []*catalog.Variant {
	byHandle := make(map[string]string, len(views))
	for _, v := range views {
		byHandle[v.handle] = v.path
	}

	var declared []variantConfig
	var defaultHandle string
	if conf != nil {
		declared = conf.Variants
		defaultHandle = conf.Default
	}

	confByHandle := make(map[string]variantConfig, len(declared))
	for _, vc := range declared {
		confByHandle[vc.Handle] = vc
	}

	seen := make(map[string]bool)
	var out []*catalog.Variant

	add := func(handle, viewPath string, vc *variantConfig) {
		if handle == "" || seen[handle] {
			return
		}
		seen[handle] = true
		out = append(out, l.newVariant(comp, handle, viewPath, vc))
	}

	// The component's own view is its default rendering.
	if comp.ViewPath != "" {
		viewPath := comp.ViewPath
		if p, ok := byHandle["default"]; ok {
			viewPath = p
		}
		var vc *variantConfig
		if c, ok := confByHandle["default"]; ok {
			vc = &c
		}
		add("default", viewPath, vc)
	}

	for _, vc := range declared {
		viewPath := comp.ViewPath
		if p, ok := byHandle[vc.Handle]; ok {
			viewPath = p
		}
		add(vc.Handle, viewPath, &vc)
	}

	for _, v := range views {
		add(v.handle, v.path, nil)
	}

	if defaultHandle != "" {
		flagged := false
		for _, v := range out {
			if v.Handle == defaultHandle {
				v.Default = true
				flagged = true
				break
			}
		}
		if !flagged {
			l.logger.Warn().
				Str("component", comp.Handle).
				Str("default", defaultHandle).
				Msg("Configured default variant does not exist")
		}
	}

	return out
}

// newVariant builds one variant, inheriting status, preview and base
// context from the component before applying config overrides.
func (l *Loader) newVariant(comp *catalog.Component, handle, viewPath string, vc *variantConfig) *catalog.Variant {
	v := &catalog.Variant{
		Handle:    handle,
		Component: comp.Handle,
		Label:     handle,
		ViewPath:  viewPath,
		Context:   comp.Context.Clone(),
		Status:    comp.Status,
		Preview:   comp.Preview,
	}

	if vc == nil {
		return v
	}
	if vc.Label != "" {
		v.Label = vc.Label
	}
	if vc.Status != "" {
		v.Status = vc.Status
	}
	if vc.Preview != "" {
		v.Preview = vc.Preview
	}
	v.Hidden = vc.Hidden
	if vc.Context != nil {
		if err := mergo.Merge(&v.Context, catalog.Context(vc.Context), mergo.WithOverride); err != nil {
			l.logger.Warn().Err(err).Str("variant", handle).Msg("Merging variant context failed, keeping component context")
		}
	}
	return v
}

// newAsset records one owned asset. The public path applies the
// configured prefix to the root-relative location; the source path
// stays usable for reads.
func (l *Loader) newAsset(root, full, base string) *catalog.Asset {
	rel, err := filepath.Rel(root, full)
	if err != nil {
		rel = base
	}

	ext := filepath.Ext(base)
	return &catalog.Asset{
		Path:       path.Join("/", l.cfg.Source.PathPrefix, filepath.ToSlash(rel)),
		SourcePath: full,
		Name:       strings.TrimSuffix(base, ext),
		Ext:        ext,
	}
}
