package layout

import "fmt"

// Axis represents the packing direction.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MainAxisAlignment controls how children are positioned along the main axis.
type MainAxisAlignment int

const (
	// MainAxisAlignmentStart places children at the start (left or top).
	MainAxisAlignmentStart MainAxisAlignment = iota
	// MainAxisAlignmentEnd places children at the end (right or bottom).
	MainAxisAlignmentEnd
	// MainAxisAlignmentCenter centers children along the main axis.
	MainAxisAlignmentCenter
	// MainAxisAlignmentSpaceBetween distributes free space evenly between
	// children, with no space before the first or after the last child.
	MainAxisAlignmentSpaceBetween
)

// String returns a human-readable representation of the main axis alignment.
func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisAlignmentStart:
		return "start"
	case MainAxisAlignmentEnd:
		return "end"
	case MainAxisAlignmentCenter:
		return "center"
	case MainAxisAlignmentSpaceBetween:
		return "space_between"
	default:
		return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
	}
}

// CrossAxisAlignment controls how children are positioned along the cross axis.
type CrossAxisAlignment int

const (
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	CrossAxisAlignmentEnd
	CrossAxisAlignmentCenter
	// CrossAxisAlignmentStretch gives children tight cross-axis bounds equal
	// to the container's maximum, when that maximum is finite.
	CrossAxisAlignmentStretch
)

// String returns a human-readable representation of the cross axis alignment.
func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisAlignmentStart:
		return "start"
	case CrossAxisAlignmentEnd:
		return "end"
	case CrossAxisAlignmentCenter:
		return "center"
	case CrossAxisAlignmentStretch:
		return "stretch"
	default:
		return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
	}
}

// MainAxisSize controls how much space the container takes along its main axis.
type MainAxisSize int

const (
	// MainAxisSizeMax fills the main axis when it is bounded.
	MainAxisSizeMax MainAxisSize = iota
	// MainAxisSizeMin shrink-wraps the children.
	MainAxisSizeMin
)

// FlexItem is one child taking part in a distribution.
//
// Weight 0 marks an inflexible child, which is sized before any flexible
// sibling and receives its minimum first. Layout must lay the child out
// under the given bounds and return its size.
type FlexItem struct {
	Weight int
	Layout func(bounds Bounds) Size
}

// Flex describes a single-run packing along one axis.
type Flex struct {
	Axis               Axis
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
	MainAxisSize       MainAxisSize
	// Gap is the number of cells left between adjacent children.
	Gap int
}

// FlexResult is the outcome of a distribution.
type FlexResult struct {
	// Size is the container size, always within the incoming bounds.
	Size Size
	// Offsets holds one position per item, relative to the container.
	Offsets []Offset
	// Sizes holds the size each item reported, after clamping.
	Sizes []Size
	// UnboundedFlex is set when flexible items met an unbounded main axis
	// and could not flex.
	UnboundedFlex bool
}

// Distribute negotiates sizes for items under bounds in a single pass.
//
// Inflexible items are laid out first, in order, each limited to the main
// axis space still free. What remains is split among flexible items by
// weight; integer remainders go to the earliest flexible items. When the
// minimums of earlier items exhaust the space, later items get zero.
func (f Flex) Distribute(bounds Bounds, items []FlexItem) FlexResult {
	bounds = bounds.Normalize()
	res := FlexResult{
		Offsets: make([]Offset, len(items)),
		Sizes:   make([]Size, len(items)),
	}

	maxMain := f.mainOf(bounds.MaxWidth, bounds.MaxHeight)
	maxCross := f.crossOf(bounds.MaxWidth, bounds.MaxHeight)
	unboundedMain := maxMain >= Unbounded

	gaps := 0
	if len(items) > 1 && f.Gap > 0 {
		gaps = f.Gap * (len(items) - 1)
	}
	used := gaps
	crossSize := 0
	totalWeight := 0

	for i, item := range items {
		if item.Weight > 0 {
			totalWeight += item.Weight
			continue
		}
		free := Unbounded
		if !unboundedMain {
			free = max(maxMain-used, 0)
		}
		size := f.layoutItem(item, f.childBounds(0, free, maxCross))
		res.Sizes[i] = size
		used += f.main(size)
		crossSize = max(crossSize, f.cross(size))
	}

	if totalWeight > 0 {
		remaining := 0
		if unboundedMain {
			res.UnboundedFlex = true
		} else {
			remaining = max(maxMain-used, 0)
		}
		shares := splitByWeight(remaining, items)
		for i, item := range items {
			if item.Weight <= 0 {
				continue
			}
			var cb Bounds
			if unboundedMain {
				cb = f.childBounds(0, Unbounded, maxCross)
			} else {
				cb = f.childBounds(shares[i], shares[i], maxCross)
			}
			size := f.layoutItem(item, cb)
			res.Sizes[i] = size
			used += f.main(size)
			crossSize = max(crossSize, f.cross(size))
		}
	}

	mainSize := used
	if f.MainAxisSize == MainAxisSizeMax && !unboundedMain {
		mainSize = maxMain
	}
	if f.CrossAxisAlignment == CrossAxisAlignmentStretch && maxCross < Unbounded {
		crossSize = maxCross
	}
	res.Size = bounds.Constrain(f.makeSize(mainSize, crossSize))

	freeSpace := max(f.main(res.Size)-used, 0)
	spacing, cursor := f.computeSpacing(freeSpace, len(items))
	for i := range items {
		crossOffset := f.crossAxisOffset(f.cross(res.Size), f.cross(res.Sizes[i]))
		res.Offsets[i] = f.makeOffset(cursor, crossOffset)
		cursor += f.main(res.Sizes[i]) + spacing + f.Gap
	}
	return res
}

func (f Flex) layoutItem(item FlexItem, b Bounds) Size {
	if item.Layout == nil {
		return b.Smallest()
	}
	return b.Constrain(item.Layout(b))
}

// splitByWeight hands each flexible item its share of total. The sum of
// shares is exactly total.
func splitByWeight(total int, items []FlexItem) []int {
	shares := make([]int, len(items))
	weights := 0
	for _, item := range items {
		if item.Weight > 0 {
			weights += item.Weight
		}
	}
	if weights == 0 || total <= 0 {
		return shares
	}
	given := 0
	for i, item := range items {
		if item.Weight > 0 {
			shares[i] = total * item.Weight / weights
			given += shares[i]
		}
	}
	for i, item := range items {
		if given >= total {
			break
		}
		if item.Weight > 0 {
			shares[i]++
			given++
		}
	}
	return shares
}

func (f Flex) childBounds(minMain, maxMain, maxCross int) Bounds {
	minCross := 0
	if f.CrossAxisAlignment == CrossAxisAlignmentStretch && maxCross < Unbounded {
		minCross = maxCross
	}
	if f.Axis == AxisHorizontal {
		return Bounds{MinWidth: minMain, MaxWidth: maxMain, MinHeight: minCross, MaxHeight: maxCross}
	}
	return Bounds{MinWidth: minCross, MaxWidth: maxCross, MinHeight: minMain, MaxHeight: maxMain}
}

func (f Flex) computeSpacing(freeSpace, count int) (spacing, offset int) {
	if count == 0 {
		return 0, 0
	}
	switch f.MainAxisAlignment {
	case MainAxisAlignmentEnd:
		return 0, freeSpace
	case MainAxisAlignmentCenter:
		return 0, freeSpace / 2
	case MainAxisAlignmentSpaceBetween:
		if count > 1 {
			return freeSpace / (count - 1), 0
		}
		return 0, 0
	default:
		return 0, 0
	}
}

func (f Flex) crossAxisOffset(containerCross, childCross int) int {
	switch f.CrossAxisAlignment {
	case CrossAxisAlignmentEnd:
		return max(containerCross-childCross, 0)
	case CrossAxisAlignmentCenter:
		return max(containerCross-childCross, 0) / 2
	default:
		return 0
	}
}

func (f Flex) mainOf(width, height int) int {
	if f.Axis == AxisHorizontal {
		return width
	}
	return height
}

func (f Flex) crossOf(width, height int) int {
	if f.Axis == AxisHorizontal {
		return height
	}
	return width
}

func (f Flex) main(size Size) int {
	return f.mainOf(size.Width, size.Height)
}

func (f Flex) cross(size Size) int {
	return f.crossOf(size.Width, size.Height)
}

func (f Flex) makeSize(main, cross int) Size {
	if f.Axis == AxisHorizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (f Flex) makeOffset(main, cross int) Offset {
	if f.Axis == AxisHorizontal {
		return Offset{X: main, Y: cross}
	}
	return Offset{X: cross, Y: main}
}
