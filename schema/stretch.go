package schema

// Body areas a user may report as stiff. StiffnessNone is mutually
// exclusive with the rest and never counted.
const (
	StiffnessNeck      = "Neck"
	StiffnessShoulders = "Shoulders"
	StiffnessBack      = "Back"
	StiffnessHips      = "Hips"
	StiffnessKnees     = "Knees"
	StiffnessAnkles    = "Ankles"
	StiffnessWrists    = "Wrists"
	StiffnessNone      = "None"
)

// StiffnessAreas lists the known scorable areas in display order.
var StiffnessAreas = []string{
	StiffnessNeck,
	StiffnessShoulders,
	StiffnessBack,
	StiffnessHips,
	StiffnessKnees,
	StiffnessAnkles,
	StiffnessWrists,
}

// DefaultStretchTable maps each known area to its candidate stretch
// instructions. The recommender picks one entry per area; selection is
// deterministic per day, hour and area so repeated renders within the same
// hour show the same card.
var DefaultStretchTable = map[string][]string{
	StiffnessNeck: {
		"Slowly tilt your head toward each shoulder and hold for 15 seconds per side.",
		"Tuck your chin to your chest, hold 10 seconds, then look up gently.",
		"Turn your head to look over each shoulder, holding 10 seconds per side.",
		"Roll your shoulders backward 10 times, letting your neck relax.",
		"Clasp hands behind your head and gently draw your chin down for 15 seconds.",
		"Trace slow half-circles with your nose, ear to ear, five times.",
	},
	StiffnessShoulders: {
		"Roll both shoulders forward 10 times, then backward 10 times.",
		"Pull one arm across your chest and hold it with the other for 20 seconds each.",
		"Clasp hands behind your back and lift gently, opening the chest, 15 seconds.",
		"Raise both arms overhead and reach upward for a slow count of 10.",
		"Place fingertips on shoulders and draw large circles with your elbows, 8 each way.",
		"Stand in a doorway, forearms on the frame, and lean forward for 20 seconds.",
	},
	StiffnessBack: {
		"On hands and knees, alternate arching and rounding your back 8 times.",
		"Lying down, hug both knees to your chest and rock gently for 20 seconds.",
		"Seated, twist your torso slowly to each side, holding 15 seconds per side.",
		"Stand and reach for the ceiling, then fold forward and hang for 15 seconds.",
		"Lying down, drop both knees to one side and hold 20 seconds, then switch.",
		"Kneel and sit back on your heels, arms stretched forward, for 30 seconds.",
	},
	StiffnessHips: {
		"In a low lunge, press your hips forward gently and hold 20 seconds per side.",
		"Seated, cross one ankle over the opposite knee and lean forward, 20 seconds each.",
		"Lying down, pull one knee toward your chest, 15 seconds per side.",
		"Stand and swing each leg forward and back 10 times, holding support.",
		"Sit with the soles of your feet together and let your knees drop, 30 seconds.",
		"Lying down, cross one leg over and let it fall outward, 20 seconds per side.",
	},
	StiffnessKnees: {
		"Seated, slowly straighten and bend each knee 10 times.",
		"Standing with support, bring each heel toward your glutes, 15 seconds per side.",
		"Do 10 shallow squats, only as deep as feels comfortable.",
		"Lying down, tighten your thigh and lift the straight leg slowly, 8 per side.",
		"Step up onto a low step and down again, 10 times per leg.",
		"Sitting, place a rolled towel under one knee and press down gently, 10 per side.",
	},
	StiffnessAnkles: {
		"Draw slow circles with each foot, 10 in each direction.",
		"Point and flex each foot 15 times.",
		"Standing with support, rise onto your toes and lower slowly, 12 times.",
		"Trace the alphabet in the air with each foot.",
		"Kneel with toes tucked under and sit back gently for 15 seconds.",
		"Walk on your heels for 20 steps, then on your toes for 20 steps.",
	},
	StiffnessWrists: {
		"Extend one arm, palm up, and gently pull the fingers back, 15 seconds per side.",
		"Draw slow circles with both wrists, 10 in each direction.",
		"Press palms together in front of your chest and lower them slowly, 15 seconds.",
		"Shake out both hands loosely for 10 seconds, then spread the fingers wide.",
		"With a soft fist, flex and extend each wrist 12 times.",
		"Rest forearms on a table, hands over the edge, and wave up and down 12 times.",
	},
}
