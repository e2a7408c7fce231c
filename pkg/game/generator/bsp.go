package generator

import (
	"darkfortress/pkg/engine/rng"
	"darkfortress/pkg/engine/world"
)

// BSPArchitecture generates maps using Binary Space Partitioning
type BSPArchitecture struct{}

// Name returns the name of this architecture
func (a *BSPArchitecture) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *world.Rect
}

// Constants for BSP generation
const (
	minNodeSize    = 8 // Minimum size of a BSP node
	minBSPRoomSize = 4 // Minimum size of a room
	roomPadding    = 2 // Padding between room and node edge
)

// Build fills the map with walls and carves one room per BSP leaf, joining
// sibling subtrees with corridors
func (a *BSPArchitecture) Build(m *world.Map, r *rng.RNG) Layout {
	m.Fill(world.Wall)

	// Leave a 1 tile border for perimeter walls
	root := &bspNode{
		x:      1,
		y:      1,
		width:  m.Width() - 2,
		height: m.Height() - 2,
	}

	splitBSP(r, root, minNodeSize)
	createRooms(r, root)
	carveRooms(m, root)
	connectRooms(m, r, root)

	rooms := collectRooms(root)
	layout := Layout{Rooms: rooms}
	if len(rooms) > 0 {
		layout.PlayerStart = rooms[r.Intn(len(rooms))].Center()
	} else {
		center := world.Pt(m.Width()/2, m.Height()/2)
		m.SetTile(center, world.Floor)
		layout.PlayerStart = center
	}
	return layout
}

// splitBSP recursively splits a BSP node
func splitBSP(r *rng.RNG, node *bspNode, minSize int) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = r.CoinFlip()
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + r.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + r.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(r, node.left, minSize)
	splitBSP(r, node.right, minSize)
}

// createRooms creates rooms in leaf nodes
func createRooms(r *rng.RNG, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(r, node.left)
		}
		if node.right != nil {
			createRooms(r, node.right)
		}
		return
	}

	// Leaves smaller than a room plus padding stay solid
	if node.width < minBSPRoomSize+roomPadding || node.height < minBSPRoomSize+roomPadding {
		return
	}

	roomWidth := minBSPRoomSize + r.Intn(node.width-minBSPRoomSize-roomPadding+1)
	roomHeight := minBSPRoomSize + r.Intn(node.height-minBSPRoomSize-roomPadding+1)

	roomX := node.x + r.Intn(node.width-roomWidth)
	roomY := node.y + r.Intn(node.height-roomHeight)

	room := world.RectWithSize(roomX, roomY, roomWidth, roomHeight)
	node.room = &room
}

// carveRooms marks room tiles as floor
func carveRooms(m *world.Map, node *bspNode) {
	if node.room != nil {
		carveRect(m, *node.room)
	}
	if node.left != nil {
		carveRooms(m, node.left)
	}
	if node.right != nil {
		carveRooms(m, node.right)
	}
}

// connectRooms connects a room of each subtree with an L-shaped corridor
func connectRooms(m *world.Map, r *rng.RNG, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(r, node.left)
	rightRoom := getRoom(r, node.right)
	if leftRoom != nil && rightRoom != nil {
		connect(m, r, leftRoom.Center(), rightRoom.Center())
	}

	connectRooms(m, r, node.left)
	connectRooms(m, r, node.right)
}

// getRoom returns a room from a subtree (picks randomly between children)
func getRoom(r *rng.RNG, node *bspNode) *world.Rect {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *world.Rect
	if node.left != nil {
		leftRoom = getRoom(r, node.left)
	}
	if node.right != nil {
		rightRoom = getRoom(r, node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if r.CoinFlip() {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree, left to right
func collectRooms(node *bspNode) []world.Rect {
	var rooms []world.Rect
	if node.room != nil {
		rooms = append(rooms, *node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}
	return rooms
}
