package game

// Item is something the player can hold.
type Item int

const (
	ItemNone Item = iota
	ItemIdol
	ItemElixir
	ItemMachete
	ItemCharm
	ItemPickaxe
	ItemShotgun
	ItemBandage
)

// MaxItemCount is the number of uses granted for counted items.
const MaxItemCount = 2

var itemNames = map[Item]string{
	ItemNone:    "none",
	ItemIdol:    "idol",
	ItemElixir:  "elixir",
	ItemMachete: "machete",
	ItemCharm:   "charm",
	ItemPickaxe: "pickaxe",
	ItemShotgun: "shotgun",
	ItemBandage: "bandage",
}

func (i Item) String() string {
	if s, ok := itemNames[i]; ok {
		return s
	}
	return "unknown"
}

// ParseItem is the inverse of Item.String.
func ParseItem(name string) (Item, bool) {
	for item, s := range itemNames {
		if s == name && item != ItemNone {
			return item, true
		}
	}
	return ItemNone, false
}

// Inventory holds flags for unique items and counts (0-2) for the rest.
type Inventory struct {
	Idol    bool
	Elixir  bool
	Machete bool
	Charm   int
	Pickaxe int
	Shotgun int
	Bandage int
}

// Grant gives the player an item. Counted items are refilled to MaxItemCount.
func (inv *Inventory) Grant(item Item) {
	switch item {
	case ItemIdol:
		inv.Idol = true
	case ItemElixir:
		inv.Elixir = true
	case ItemMachete:
		inv.Machete = true
	case ItemCharm:
		inv.Charm = MaxItemCount
	case ItemPickaxe:
		inv.Pickaxe = MaxItemCount
	case ItemShotgun:
		inv.Shotgun = MaxItemCount
	case ItemBandage:
		inv.Bandage = MaxItemCount
	}
}

// Has reports whether the player holds at least one of item.
func (inv Inventory) Has(item Item) bool {
	switch item {
	case ItemIdol:
		return inv.Idol
	case ItemElixir:
		return inv.Elixir
	case ItemMachete:
		return inv.Machete
	case ItemCharm:
		return inv.Charm > 0
	case ItemPickaxe:
		return inv.Pickaxe > 0
	case ItemShotgun:
		return inv.Shotgun > 0
	case ItemBandage:
		return inv.Bandage > 0
	}
	return false
}

// Player is the mutable player record.
type Player struct {
	Health    int
	Cell      Cell
	Turn      int
	Inventory Inventory
	// Visited is display-only history; it starts with the start cell.
	Visited []Cell
}
