package request

type AvailabilityQuery struct {
	Date     string `form:"date" binding:"required"`
	Location string `form:"location" binding:"required"`
}

type CheckSlotQuery struct {
	Date     string `form:"date" binding:"required"`
	Location string `form:"location" binding:"required"`
	SlotID   string `form:"slotId" binding:"required"`
	Package  string `form:"package"`
}
