package forgeutils

type factory struct{}

var Factory factory

func (f factory) NewTemplateCache(cap int) *TemplateCache {
	return &TemplateCache{
		nameIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
