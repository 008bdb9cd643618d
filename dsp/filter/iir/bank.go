package iir

import "fmt"

// Bank is an ordered chain of filters processed in series: the output of
// each filter feeds the next. An empty bank passes samples through.
type Bank struct {
	filters []*Filter
}

// NewBank creates a bank from the given filters, in processing order.
func NewBank(filters ...*Filter) *Bank {
	b := &Bank{}
	b.Append(filters...)

	return b
}

// Len returns the number of filters in the bank.
func (b *Bank) Len() int { return len(b.filters) }

// At returns the filter at index i. It panics if i is out of range.
func (b *Bank) At(i int) *Filter { return b.filters[i] }

// Append adds filters to the end of the chain. Nil filters are skipped.
func (b *Bank) Append(filters ...*Filter) {
	for _, f := range filters {
		if f != nil {
			b.filters = append(b.filters, f)
		}
	}
}

// Insert places f before the filter currently at index i. Inserting at
// Len() appends.
func (b *Bank) Insert(i int, f *Filter) error {
	if i < 0 || i > len(b.filters) {
		return fmt.Errorf("%w: insert at %d, len %d", ErrIndexOutOfRange, i, len(b.filters))
	}

	if f == nil {
		return fmt.Errorf("%w: nil filter", ErrInvalidParams)
	}

	b.filters = append(b.filters, nil)
	copy(b.filters[i+1:], b.filters[i:])
	b.filters[i] = f

	return nil
}

// Remove deletes and returns the filter at index i.
func (b *Bank) Remove(i int) (*Filter, error) {
	if i < 0 || i >= len(b.filters) {
		return nil, fmt.Errorf("%w: remove at %d, len %d", ErrIndexOutOfRange, i, len(b.filters))
	}

	f := b.filters[i]
	copy(b.filters[i:], b.filters[i+1:])
	b.filters[len(b.filters)-1] = nil
	b.filters = b.filters[:len(b.filters)-1]

	return f, nil
}

// UpdateSampleRate forwards the sample rate to every filter.
func (b *Bank) UpdateSampleRate(sampleRate float64) {
	for _, f := range b.filters {
		f.UpdateSampleRate(sampleRate)
	}
}

// ProcessSample runs x through every filter in order.
func (b *Bank) ProcessSample(x float64) float64 {
	for _, f := range b.filters {
		x = f.ProcessSample(x)
	}

	return x
}

// ProcessBlock filters buf in place through the full chain.
func (b *Bank) ProcessBlock(buf []float64) {
	for _, f := range b.filters {
		f.ProcessBlock(buf)
	}
}

// Reset clears the history of every filter.
func (b *Bank) Reset() {
	for _, f := range b.filters {
		f.Reset()
	}
}
