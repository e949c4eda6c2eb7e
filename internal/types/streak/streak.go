package streak

// Milestones are the streak lengths that trigger a push notification.
var Milestones = []int{3, 7, 14, 30, 50, 100, 365}

func IsMilestone(value int) bool {
	for _, m := range Milestones {
		if m == value {
			return true
		}
	}
	return false
}
